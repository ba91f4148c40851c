package services

import (
	"context"
	"errors"
	"testing"

	"github.com/nkalgutkar/sports-management/models"
)

func TestToggleSelection(t *testing.T) {
	managerRepo := newStubManagerRepo(&models.Manager{Name: "M", Email: "m@x.co"})
	studentRepo := newStubStudentRepo(&models.Student{Name: "S", PrnUID: "PRN-1", ManagerID: 1})
	selectionRepo := newStubSelectionRepo()
	svc := NewSelectionService(selectionRepo, studentRepo, managerRepo)

	sel, err := svc.Toggle(context.Background(), ToggleSelectionInput{StudentID: 1, ManagerID: 1, IsSelected: true})
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !sel.IsSelected {
		t.Error("selection flag not set")
	}

	// Same pair again must update in place, not create a second row.
	again, err := svc.Toggle(context.Background(), ToggleSelectionInput{StudentID: 1, ManagerID: 1, IsSelected: false})
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if again.IsSelected {
		t.Error("selection flag not cleared")
	}
	if again.ID != sel.ID {
		t.Errorf("toggle created a new row: id %d then %d", sel.ID, again.ID)
	}

	rows, err := svc.ListByManager(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByManager: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want 1", len(rows))
	}
}

func TestToggleSelection_UnknownRefs(t *testing.T) {
	managerRepo := newStubManagerRepo(&models.Manager{Name: "M", Email: "m@x.co"})
	studentRepo := newStubStudentRepo(&models.Student{Name: "S", PrnUID: "PRN-1", ManagerID: 1})
	svc := NewSelectionService(newStubSelectionRepo(), studentRepo, managerRepo)

	if _, err := svc.Toggle(context.Background(), ToggleSelectionInput{StudentID: 9, ManagerID: 1, IsSelected: true}); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("unknown student: got %v, want %v", err, ErrStudentNotFound)
	}
	if _, err := svc.Toggle(context.Background(), ToggleSelectionInput{StudentID: 1, ManagerID: 9, IsSelected: true}); !errors.Is(err, ErrManagerNotFound) {
		t.Errorf("unknown manager: got %v, want %v", err, ErrManagerNotFound)
	}
}
