package usecase

import (
	"testing"
	"time"

	"go.uber.org/goleak"

	adapterrepo "choukette/internal/adapter/repository"
	"choukette/internal/domain/repository"
	"choukette/internal/domain/service"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// started at init by the tracing dependency of the Firestore client
		goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"),
	)
}

var testNow = time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func newSnapshots() (*service.SnapshotService, repository.SnapshotRepository) {
	repo := adapterrepo.NewMemorySnapshotRepository()
	return service.NewSnapshotService(repo), repo
}
