package service

import (
	"errors"
	"testing"

	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"github.com/ManishJangid007/hirely-sub000/internal/dto"
)

func TestReplacePositionsDedupesAndRenumbers(t *testing.T) {
	f := newFakeStore()
	sched := &fakeScheduler{}
	svc := NewPositionService(f.Positions(), sched)

	resp, err := svc.ReplacePositions(dto.ReplacePositionsRequest{
		Positions: []string{"Backend", "SRE", "Backend", "QA", "SRE"},
	})
	if err != nil {
		t.Fatalf("ReplacePositions: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("positions = %+v, want 3 rows", resp)
	}
	wantNames := []string{"Backend", "SRE", "QA"}
	for i, p := range resp {
		if p.ID != i+1 || p.Name != wantNames[i] {
			t.Fatalf("row %d = %+v, want id %d name %q", i, p, i+1, wantNames[i])
		}
	}
	if sched.calls() != 1 {
		t.Fatalf("schedule calls = %d", sched.calls())
	}

	stored, err := svc.GetPositions()
	if err != nil || len(stored) != 3 {
		t.Fatalf("stored = %+v %v", stored, err)
	}

	resp, err = svc.ReplacePositions(dto.ReplacePositionsRequest{})
	if err != nil {
		t.Fatalf("empty replace: %v", err)
	}
	if len(resp) != 0 {
		t.Fatalf("empty replace returned %+v", resp)
	}
	stored, err = svc.GetPositions()
	if err != nil || len(stored) != 0 {
		t.Fatalf("list not cleared: %+v %v", stored, err)
	}
}

func TestAddPositionNumbersPastTheHighestID(t *testing.T) {
	f := newFakeStore()
	sched := &fakeScheduler{}
	svc := NewPositionService(f.Positions(), sched)

	first, err := svc.AddPosition(dto.AddPositionRequest{Name: "Backend"})
	if err != nil {
		t.Fatalf("add first: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("first id = %d", first.ID)
	}
	second, err := svc.AddPosition(dto.AddPositionRequest{Name: "SRE"})
	if err != nil {
		t.Fatalf("add second: %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("second id = %d", second.ID)
	}

	if _, err := svc.AddPosition(dto.AddPositionRequest{Name: "Backend"}); !errors.Is(err, apperr.ErrDuplicateID) {
		t.Fatalf("duplicate name: err = %v", err)
	}
	if sched.calls() != 2 {
		t.Fatalf("rejected add must not schedule, calls = %d", sched.calls())
	}
}
