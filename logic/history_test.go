package logic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/privops/elevate/directory"
	"github.com/privops/elevate/models"
	"github.com/stretchr/testify/assert"
)

func TestActivationHistory(t *testing.T) {
	t.Run("Returns_Newest_First", func(t *testing.T) {
		dir := &fakeDirectory{
			history: []directory.RequestRecord{
				{RequestID: "req-old", RoleID: "R1", Status: "Expired", SubmittedAt: testClock.Add(-48 * time.Hour)},
				{RequestID: "req-new", RoleID: "R1", Status: "Provisioned", SubmittedAt: testClock.Add(-time.Hour)},
				{RequestID: "req-mid", RoleID: "R1", Status: "AdminDenied", SubmittedAt: testClock.Add(-24 * time.Hour)},
			},
		}
		engine := newTestEngine(dir, nil)
		results, err := engine.ActivationHistory(context.Background(), "P1", testClock.Add(-72*time.Hour), testClock)
		assert.Nil(t, err)
		if assert.Len(t, results, 3) {
			assert.Equal(t, "req-new", results[0].RequestID)
			assert.Equal(t, "req-mid", results[1].RequestID)
			assert.Equal(t, "req-old", results[2].RequestID)
		}
	})
	t.Run("Maps_External_Statuses", func(t *testing.T) {
		dir := &fakeDirectory{
			history: []directory.RequestRecord{
				{RequestID: "req-1", RoleID: "R1", Status: "AdminDenied", SubmittedAt: testClock.Add(-time.Hour)},
				{RequestID: "req-2", RoleID: "R1", Status: "some future state", SubmittedAt: testClock.Add(-2 * time.Hour)},
			},
		}
		engine := newTestEngine(dir, nil)
		results, err := engine.ActivationHistory(context.Background(), "P1", testClock.Add(-24*time.Hour), testClock)
		assert.Nil(t, err)
		assert.Equal(t, models.StatusDenied, results[0].Status)
		assert.Equal(t, models.StatusSubmitted, results[1].Status)
	})
	t.Run("Resolves_Role_Names_With_Fallback", func(t *testing.T) {
		dir := &fakeDirectory{
			roleErr: errors.New("lookup unavailable"),
			history: []directory.RequestRecord{
				{RequestID: "req-1", RoleID: "62e90394-69f5-4237-9190-012177145e10",
					Status: "Expired", SubmittedAt: testClock.Add(-time.Hour)},
			},
		}
		engine := newTestEngine(dir, nil)
		results, err := engine.ActivationHistory(context.Background(), "P1", testClock.Add(-24*time.Hour), testClock)
		assert.Nil(t, err)
		assert.Equal(t, "Global Administrator", results[0].RoleName)
	})
	t.Run("Missing_Principal_Rejected_Without_Call", func(t *testing.T) {
		dir := &fakeDirectory{}
		engine := newTestEngine(dir, nil)
		_, err := engine.ActivationHistory(context.Background(), "", testClock.Add(-24*time.Hour), testClock)
		assert.NotNil(t, err)
		assert.Equal(t, 0, dir.totalCalls)
	})
	t.Run("Backend_Error_Is_Surfaced", func(t *testing.T) {
		dir := &fakeDirectory{historyErr: errors.New("history store unavailable")}
		engine := newTestEngine(dir, nil)
		_, err := engine.ActivationHistory(context.Background(), "P1", testClock.Add(-24*time.Hour), testClock)
		assert.NotNil(t, err)
	})
}
