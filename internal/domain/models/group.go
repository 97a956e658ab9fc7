// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is one aggregate document in the groups collection: a named
// family together with its embedded member profiles. The group and its
// members form a single consistency unit; members are only ever mutated
// through targeted updates on this document.
//
// NameCI is a case/diacritic-folded shadow of Name backing the unique
// name index. It is internal and never rendered to callers.
type Group struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Name    string             `bson:"name" json:"name"`
	NameCI  string             `bson:"name_ci" json:"-"`
	Members []MemberProfile    `bson:"members" json:"members"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// NumberOfPeople is derived from the member list at read time and is
// never persisted.
func (g Group) NumberOfPeople() int {
	return len(g.Members)
}

// Member returns the member with the given ID, or false if the group has
// no such member.
func (g Group) Member(id primitive.ObjectID) (MemberProfile, bool) {
	for _, m := range g.Members {
		if m.ID == id {
			return m, true
		}
	}
	return MemberProfile{}, false
}
