package audit_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lbertrand/familyserve/internal/app/store/audit"
	"github.com/lbertrand/familyserve/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_InsertAndRecentByGroup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	groupID := primitive.NewObjectID()
	otherGroup := primitive.NewObjectID()

	for _, action := range []string{"group.create", "member.add", "member.remove"} {
		err := store.Insert(ctx, audit.Event{
			EventID: uuid.NewString(),
			Action:  action,
			GroupID: groupID,
			Success: true,
		})
		if err != nil {
			t.Fatalf("Insert %q failed: %v", action, err)
		}
	}
	if err := store.Insert(ctx, audit.Event{
		EventID: uuid.NewString(),
		Action:  "group.create",
		GroupID: otherGroup,
		Success: true,
	}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	events, err := store.RecentByGroup(ctx, groupID, 50)
	if err != nil {
		t.Fatalf("RecentByGroup failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events for the group, got %d", len(events))
	}
	for _, e := range events {
		if e.GroupID != groupID {
			t.Errorf("event for wrong group: %+v", e)
		}
		if e.CreatedAt.IsZero() {
			t.Error("expected CreatedAt to be stamped on insert")
		}
	}
}

func TestStore_RecentByGroup_Limit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	groupID := primitive.NewObjectID()
	for i := 0; i < 5; i++ {
		if err := store.Insert(ctx, audit.Event{
			EventID: uuid.NewString(),
			Action:  "member.update",
			GroupID: groupID,
			Success: true,
		}); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	events, err := store.RecentByGroup(ctx, groupID, 2)
	if err != nil {
		t.Fatalf("RecentByGroup failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("expected the limit to cap results at 2, got %d", len(events))
	}
}
