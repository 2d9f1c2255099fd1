package models

import (
	"time"

	"gorm.io/gorm"
)

// GameStatus is the lifecycle phase of a game. It only ever moves forward:
// PREPARING -> STARTED -> FINISHED.
type GameStatus string

const (
	StatusPreparing GameStatus = "PREPARING"
	StatusStarted   GameStatus = "STARTED"
	StatusFinished  GameStatus = "FINISHED"
)

type Game struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Title     string         `json:"title" gorm:"not null"`
	Status    GameStatus     `json:"status" gorm:"not null;default:'PREPARING'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Categories []Category `json:"categories,omitempty" gorm:"foreignKey:GameID"`
	Teams      []Team     `json:"teams,omitempty" gorm:"foreignKey:GameID"`
}
