package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/models"

	"go.uber.org/zap"
)

func TestGetOrCreateIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, zap.NewNop())

	first, err := svc.GetOrCreate("919876543210")
	if err != nil {
		t.Fatalf("GetOrCreate error: %v", err)
	}
	second, err := svc.GetOrCreate("919876543210")
	if err != nil {
		t.Fatalf("GetOrCreate error: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("GetOrCreate returned different users: %d vs %d", first.ID, second.ID)
	}

	var count int64
	db.Model(&models.User{}).Where("phone_number = ?", "919876543210").Count(&count)
	if count != 1 {
		t.Errorf("user count = %d, want 1", count)
	}
}

func TestGetOrCreateConcurrent(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, zap.NewNop())

	const callers = 10
	var wg sync.WaitGroup
	errs := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.GetOrCreate("911111111111"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent GetOrCreate error: %v", err)
	}

	var count int64
	db.Model(&models.User{}).Where("phone_number = ?", "911111111111").Count(&count)
	if count != 1 {
		t.Errorf("user count = %d, want exactly 1", count)
	}
}

func TestGetOrCreateRejectsEmptyPhone(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, zap.NewNop())

	if _, err := svc.GetOrCreate("  "); !errors.Is(err, ErrValidation) {
		t.Errorf("GetOrCreate(blank) error = %v, want ErrValidation", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, zap.NewNop())

	_, err := svc.UpdateProfile("919876543210", ProfileInput{
		Name: "Ansh", Age: 25, Height: 175, Weight: 70,
	})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}

	// A second partial update leaves unspecified fields untouched.
	user, err := svc.UpdateProfile("919876543210", ProfileInput{Weight: 72})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if user.Name != "Ansh" || user.Height != 175 {
		t.Errorf("partial update clobbered fields: name=%q height=%v", user.Name, user.Height)
	}
	if user.Weight != 72 {
		t.Errorf("Weight = %v, want 72", user.Weight)
	}
}

func TestFindByPhoneNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, zap.NewNop())

	if _, err := svc.FindByPhone("000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByPhone error = %v, want ErrNotFound", err)
	}
}
