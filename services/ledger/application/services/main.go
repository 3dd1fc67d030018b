package services

import (
	"fmt"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/services/ledger/infrastructure/persistence/jsonfile"
)

// Services is the application-layer service container for this bounded context.
// It wires the ledger with its infrastructure.
type Services struct {
	Ledger *Ledger
}

// New builds the snapshot store from configuration, loads the last snapshot,
// and returns the ready service container. Construct once per process: the
// Ledger owns the authoritative in-memory state.
func New(a *app.Application) (*Services, error) {
	store := jsonfile.NewStore(a.Config.SnapshotPath, a.Logger)
	led, err := NewLedger(store, a.EventBus, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("init ledger: %w", err)
	}
	return &Services{Ledger: led}, nil
}
