package service

import (
	"errors"
	"testing"

	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"github.com/ManishJangid007/hirely-sub000/internal/dto"
)

func TestGetSettingsReportsDefaultsBeforeFirstSave(t *testing.T) {
	f := newFakeStore()
	svc := NewSettingsService(f.Settings(), &fakeScheduler{})

	resp, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if resp.GeminiApiKey != "" || resp.GeminiConnected {
		t.Fatalf("resp = %+v, want defaults", resp)
	}
	// Reading defaults must not create the record.
	if _, err := f.Settings().Get(); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatal("GetSettings wrote a settings record")
	}
}

func TestUpdateSettingsMergesPatch(t *testing.T) {
	f := newFakeStore()
	sched := &fakeScheduler{}
	svc := NewSettingsService(f.Settings(), sched)

	key := "AIza-test-key"
	resp, err := svc.UpdateSettings(dto.UpdateSettingsRequest{GeminiApiKey: &key})
	if err != nil {
		t.Fatalf("patch key: %v", err)
	}
	if resp.GeminiApiKey != key || resp.GeminiConnected {
		t.Fatalf("resp = %+v", resp)
	}

	connected := true
	resp, err = svc.UpdateSettings(dto.UpdateSettingsRequest{GeminiConnected: &connected})
	if err != nil {
		t.Fatalf("patch connected: %v", err)
	}
	if resp.GeminiApiKey != key {
		t.Fatal("patching one field must not blank the other")
	}
	if !resp.GeminiConnected {
		t.Fatalf("resp = %+v", resp)
	}

	empty := ""
	resp, err = svc.UpdateSettings(dto.UpdateSettingsRequest{GeminiApiKey: &empty})
	if err != nil {
		t.Fatalf("clear key: %v", err)
	}
	if resp.GeminiApiKey != "" || !resp.GeminiConnected {
		t.Fatalf("explicit empty string should clear the key, resp = %+v", resp)
	}

	if sched.calls() != 3 {
		t.Fatalf("schedule calls = %d", sched.calls())
	}
}
