package services

import (
	"fmt"
	"testing"

	"github.com/markoco14/ennytime-sub000/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.ShiftType{},
		&models.ShiftAssignment{},
		&models.Share{},
		&models.Session{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		DisplayName:  username,
		Username:     &username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(user).Error)

	return user
}
