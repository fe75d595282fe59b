package models

import "time"

// AdminAccount - учётная запись сотрудника из таблицы admin.
// Создаётся вне сервиса, здесь только читается и меняется пароль.
type AdminAccount struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AdminIdentity - минимальные данные, которые отдаются после логина.
type AdminIdentity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func (a *AdminAccount) Identity() AdminIdentity {
	return AdminIdentity{ID: a.ID, Email: a.Email}
}
