package cli

import (
	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/auth"
	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/commission"
	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/store"
	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/tracking"
)

// core bundles the engine components over one open store for the duration of
// a single command.
type core struct {
	store   *store.SQL
	tracker *tracking.Tracker
	engine  *commission.Engine
	guard   *auth.Guard
}

func withCore(fn func(*core) error) error {
	st, err := store.Open(dbDSN)
	if err != nil {
		return err
	}
	defer st.Close()

	tracker := tracking.New(st)
	return fn(&core{
		store:   st,
		tracker: tracker,
		engine:  commission.NewEngine(st, tracker),
		guard:   auth.NewGuard(st),
	})
}
