package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nkalgutkar/sports-management/models"
)

func newStudentServiceAt(now string, managerRepo *stubManagerRepo, studentRepo *stubStudentRepo) *studentService {
	return &studentService{
		studentRepo: studentRepo,
		managerRepo: managerRepo,
		now:         func() time.Time { return date(now) },
	}
}

func TestCreateStudent_ComputesAge(t *testing.T) {
	managerRepo := newStubManagerRepo(&models.Manager{Name: "M", Email: "m@x.co"})
	svc := newStudentServiceAt("2026-06-14", managerRepo, newStubStudentRepo())

	student, err := svc.CreateStudent(context.Background(), StudentInput{
		Name:      "R. Patil",
		PrnUID:    "PRN-1001",
		Contact:   "9123456780",
		BirthDate: "2005-06-15",
		ManagerID: 1,
	})
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	if student.Age != 20 {
		t.Errorf("age = %d, want 20", student.Age)
	}
	if student.ManagerID != 1 {
		t.Errorf("manager id = %d, want 1", student.ManagerID)
	}
}

func TestCreateStudent_RejectsBadInput(t *testing.T) {
	managerRepo := newStubManagerRepo(&models.Manager{Name: "M", Email: "m@x.co"})
	svc := newStudentServiceAt("2026-01-01", managerRepo, newStubStudentRepo())

	base := StudentInput{
		Name:      "R. Patil",
		PrnUID:    "PRN-1001",
		Contact:   "9123456780",
		BirthDate: "2005-06-15",
		ManagerID: 1,
	}

	tests := []struct {
		name    string
		mutate  func(*StudentInput)
		wantErr error
	}{
		{"blank name", func(in *StudentInput) { in.Name = "" }, ErrNameRequired},
		{"blank prn", func(in *StudentInput) { in.PrnUID = "  " }, ErrPrnUIDRequired},
		{"blank contact", func(in *StudentInput) { in.Contact = "" }, ErrContactRequired},
		{"malformed birth date", func(in *StudentInput) { in.BirthDate = "15-06-2005" }, ErrBirthDateInvalid},
		{"unknown manager", func(in *StudentInput) { in.ManagerID = 99 }, ErrManagerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := base
			tt.mutate(&input)
			if _, err := svc.CreateStudent(context.Background(), input); !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateStudent: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateStudent_DuplicatePrn(t *testing.T) {
	managerRepo := newStubManagerRepo(&models.Manager{Name: "M", Email: "m@x.co"})
	svc := newStudentServiceAt("2026-01-01", managerRepo, newStubStudentRepo())

	input := StudentInput{
		Name:      "R. Patil",
		PrnUID:    "PRN-1001",
		Contact:   "9123456780",
		BirthDate: "2005-06-15",
		ManagerID: 1,
	}
	if _, err := svc.CreateStudent(context.Background(), input); err != nil {
		t.Fatalf("first create: %v", err)
	}

	input.Name = "Another Student"
	if _, err := svc.CreateStudent(context.Background(), input); !errors.Is(err, ErrStudentPrnConflict) {
		t.Errorf("second create: got %v, want %v", err, ErrStudentPrnConflict)
	}
}

func TestUpdateStudent_RecomputesAge(t *testing.T) {
	managerRepo := newStubManagerRepo(&models.Manager{Name: "M", Email: "m@x.co"})
	studentRepo := newStubStudentRepo()
	svc := newStudentServiceAt("2026-08-01", managerRepo, studentRepo)

	created, err := svc.CreateStudent(context.Background(), StudentInput{
		Name:      "R. Patil",
		PrnUID:    "PRN-1001",
		Contact:   "9123456780",
		BirthDate: "2005-06-15",
		ManagerID: 1,
	})
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	updated, err := svc.UpdateStudent(context.Background(), created.ID, StudentInput{
		Name:      "R. Patil",
		PrnUID:    "PRN-1001",
		Contact:   "9123456780",
		BirthDate: "2008-12-01",
		ManagerID: 1,
	})
	if err != nil {
		t.Fatalf("UpdateStudent: %v", err)
	}
	if updated.Age != 17 {
		t.Errorf("age = %d, want 17", updated.Age)
	}
}

func TestDeleteStudent_NotFound(t *testing.T) {
	managerRepo := newStubManagerRepo()
	svc := newStudentServiceAt("2026-01-01", managerRepo, newStubStudentRepo())

	if err := svc.DeleteStudent(context.Background(), 7); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("DeleteStudent: got %v, want %v", err, ErrStudentNotFound)
	}
}
