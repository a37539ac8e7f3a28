package persistence

import (
	"testing"

	"go.uber.org/zap"
)

func TestMigrate_RejectsEmptyDSN(t *testing.T) {
	t.Parallel()

	if err := RunMigrations("migrations", "", zap.NewNop()); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}
