// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the process-wide database dependencies. The client is
// created once in ConnectDB and shared by every component (the driver is
// safe for concurrent use); stores receive the database by explicit
// injection rather than through a global.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
}
