// internal/app/store/groups/memberops.go
package groupstore

import (
	"context"
	"time"

	"github.com/lbertrand/familyserve/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var returnUpdated = options.FindOneAndUpdate().SetReturnDocument(options.After)

// AddMember appends m to the group's member list with a fresh
// store-assigned identifier, bumping the aggregate's update timestamp in
// the same operation. The append is a single atomic push: N concurrent
// adds against the same group yield N members with distinct identifiers,
// in arrival order at the store.
func (s *Store) AddMember(ctx context.Context, groupID primitive.ObjectID, m models.MemberProfile) (models.Group, error) {
	m.ID = primitive.NewObjectID()
	m.DietaryProfile.Restrictions = withRestrictionIDs(m.DietaryProfile.Restrictions)
	if m.DietaryProfile.Preferences.Likes == nil {
		m.DietaryProfile.Preferences.Likes = []string{}
	}
	if m.DietaryProfile.Preferences.Dislikes == nil {
		m.DietaryProfile.Preferences.Dislikes = []string{}
	}
	if m.DietaryProfile.Allergies == nil {
		m.DietaryProfile.Allergies = []string{}
	}

	update := bson.M{
		"$push": bson.M{"members": m},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}

	var g models.Group
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": groupID}, update, returnUpdated).Decode(&g)
	if err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// UpdateMember applies the whitelisted fields of patch to one member,
// addressed by the positional match on the members array, as a single
// atomic set. Supplying one dietary leaf never erases its siblings. An
// empty patch (no recognized field) performs no write and returns the
// current aggregate unchanged.
func (s *Store) UpdateMember(ctx context.Context, groupID, memberID primitive.ObjectID, patch MemberPatch) (models.Group, error) {
	set := patch.setDoc("members.$.")
	if len(set) == 0 {
		// No-op read: the member must still resolve for parity with the
		// write path's not-found behavior.
		var g models.Group
		err := s.c.FindOne(ctx, memberFilter(groupID, memberID)).Decode(&g)
		if err != nil {
			return models.Group{}, err
		}
		return g, nil
	}
	set["updated_at"] = time.Now().UTC()

	var g models.Group
	err := s.c.FindOneAndUpdate(ctx, memberFilter(groupID, memberID), bson.M{"$set": set}, returnUpdated).Decode(&g)
	if err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// RemoveMember pulls the member with the given identifier out of the
// list and bumps the aggregate timestamp in the same operation. The
// filter requires the member to exist so a missing member surfaces as
// not-found rather than a silent no-op.
func (s *Store) RemoveMember(ctx context.Context, groupID, memberID primitive.ObjectID) (models.Group, error) {
	update := bson.M{
		"$pull": bson.M{"members": bson.M{"_id": memberID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}

	var g models.Group
	err := s.c.FindOneAndUpdate(ctx, memberFilter(groupID, memberID), update, returnUpdated).Decode(&g)
	if err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// memberFilter addresses exactly one member inside one group. Paired
// with the positional $ operator it lets member-scoped updates hit a
// single array element without reading the array first.
func memberFilter(groupID, memberID primitive.ObjectID) bson.M {
	return bson.M{"_id": groupID, "members._id": memberID}
}
