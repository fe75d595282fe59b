package memory

import "enrolladmin/internal/models"

func adminWithID(id int64) models.AdminAccount {
	return models.AdminAccount{ID: id, Email: "admin@example.com", PasswordHash: "h"}
}
