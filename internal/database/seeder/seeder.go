package seeder

import (
	"context"

	"talent-sync/internal/database"

	"github.com/google/uuid"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// seedNamespace derives stable ids for seeded rows so reruns find them again.
var seedNamespace = uuid.MustParse("8f6d2f4e-3c1b-4d7a-9a51-2b7f0c9e6a10")

func seedID(kind, key string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(kind+":"+key))
}
