package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Cycles      *CycleRepository
	Predictions *PredictionRepository
	Streaks     *StreakRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Cycles:      NewCycleRepository(database),
		Predictions: NewPredictionRepository(database),
		Streaks:     NewStreakRepository(database),
	}
}
