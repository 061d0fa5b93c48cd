package models

import (
	"testing"

	"github.com/taren4ik/hw05-final/db"

	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	db.InitTest()
	Init()
	cleanupTables(t)
	t.Cleanup(func() { cleanupTables(t) })
}

// cleanupTables wipes rows children-first so foreign keys stay happy.
func cleanupTables(t *testing.T) {
	for _, model := range []interface{}{&Follow{}, &Comment{}, &Post{}, &Group{}, &User{}} {
		if err := db.Instance.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			t.Logf("failed to cleanup table for %T: %v", model, err)
		}
	}
}

func createTestUser(t *testing.T, username string) User {
	user, err := UserCreate(username, username, username+"@example.com", "testpassword")
	if err != nil {
		t.Fatalf("failed to create test user %s: %v", username, err)
	}
	return user
}
