package domain

import "time"

const RoleCustomer = "customer"

type User struct {
	ID           uint64    `json:"UserID" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"Name" gorm:"size:255;not null"`
	Email        string    `json:"Email" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password;size:255;not null"`
	Role         string    `json:"Role" gorm:"size:50;default:'customer'"`
	CreatedAt    time.Time `json:"-" gorm:"autoCreateTime"`
}
