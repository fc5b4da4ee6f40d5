package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/domain/pricing"
	"agency_estimator/internal/domain/wizard"
	"agency_estimator/internal/infrastructure/logger"
	"agency_estimator/internal/infrastructure/metrics"
	"agency_estimator/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound   = errors.New("wizard session not found")
	ErrInvalidSessionID  = errors.New("invalid session id")
	ErrInvalidTransition = wizard.ErrInvalidTransition
	ErrInvalidStep       = wizard.ErrInvalidStep
)

// WizardView is the state of a server-held wizard after an action, with the
// estimate recomputed from the selection.
type WizardView struct {
	SessionID string
	Step      wizard.Step
	Estimate  EstimateView
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IWizardUseCase drives wizard sessions stored server side. Each mutation
// loads the session, applies one wizard action and stores the result; a
// rejected action leaves the stored session untouched. End drops the session.
type IWizardUseCase interface {
	Start(ctx context.Context, currency entities.Currency) (WizardView, error)
	End(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (WizardView, error)
	SelectService(ctx context.Context, sessionID, serviceID string) (WizardView, error)
	SelectComplexity(ctx context.Context, sessionID string, tier entities.ComplexityTier) (WizardView, error)
	ToggleFeature(ctx context.Context, sessionID, featureID string) (WizardView, error)
	Continue(ctx context.Context, sessionID string) (WizardView, error)
	SelectTimeline(ctx context.Context, sessionID string, timeline entities.TimelineOption) (WizardView, error)
	Back(ctx context.Context, sessionID, target string) (WizardView, error)
	Reset(ctx context.Context, sessionID string) (WizardView, error)
	SetCurrency(ctx context.Context, sessionID string, currency entities.Currency) (WizardView, error)
}

type WizardUseCase struct {
	repo      interfaces.IWizardSessionRepository
	estimator *pricing.Estimator
	ttl       time.Duration
	log       logger.Logger
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(repo interfaces.IWizardSessionRepository, estimator *pricing.Estimator, ttl time.Duration, log logger.Logger) *WizardUseCase {
	return &WizardUseCase{repo: repo, estimator: estimator, ttl: ttl, log: log}
}

// Start opens a session. An empty currency selects the catalog default.
func (u *WizardUseCase) Start(ctx context.Context, currency entities.Currency) (WizardView, error) {
	w := wizard.New(u.estimator.Catalog())
	if currency != "" {
		if err := w.SetCurrency(currency); err != nil {
			return WizardView{}, err
		}
	}

	now := time.Now().UTC()
	s := entities.WizardSession{
		ID:        uuid.NewString(),
		CreatedAt: now,
	}
	view, err := u.store(ctx, s, w, now)
	metrics.WizardTransitions.WithLabelValues("start", metrics.Outcome(err)).Inc()
	if err != nil {
		return WizardView{}, err
	}
	u.log.Info("wizard session started", map[string]interface{}{"session_id": s.ID, "currency": string(w.Selection().Currency)})
	return view, nil
}

// End removes a session before its TTL runs out. Quotes taken from it are kept.
func (u *WizardUseCase) End(ctx context.Context, sessionID string) error {
	s, _, err := u.load(ctx, sessionID)
	if err != nil {
		return err
	}
	err = u.repo.Delete(ctx, s.ID)
	metrics.WizardTransitions.WithLabelValues("end", metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}
	u.log.Info("wizard session ended", map[string]interface{}{"session_id": s.ID})
	return nil
}

func (u *WizardUseCase) Get(ctx context.Context, sessionID string) (WizardView, error) {
	s, w, err := u.load(ctx, sessionID)
	if err != nil {
		return WizardView{}, err
	}
	return u.view(s, w, s.UpdatedAt)
}

func (u *WizardUseCase) SelectService(ctx context.Context, sessionID, serviceID string) (WizardView, error) {
	return u.apply(ctx, sessionID, "select_service", func(w *wizard.Wizard) error {
		return w.SelectService(strings.TrimSpace(serviceID))
	})
}

func (u *WizardUseCase) SelectComplexity(ctx context.Context, sessionID string, tier entities.ComplexityTier) (WizardView, error) {
	return u.apply(ctx, sessionID, "select_complexity", func(w *wizard.Wizard) error {
		return w.SelectComplexity(tier)
	})
}

func (u *WizardUseCase) ToggleFeature(ctx context.Context, sessionID, featureID string) (WizardView, error) {
	return u.apply(ctx, sessionID, "toggle_feature", func(w *wizard.Wizard) error {
		return w.ToggleFeature(strings.TrimSpace(featureID))
	})
}

func (u *WizardUseCase) Continue(ctx context.Context, sessionID string) (WizardView, error) {
	return u.apply(ctx, sessionID, "continue", func(w *wizard.Wizard) error {
		return w.Continue()
	})
}

func (u *WizardUseCase) SelectTimeline(ctx context.Context, sessionID string, timeline entities.TimelineOption) (WizardView, error) {
	return u.apply(ctx, sessionID, "select_timeline", func(w *wizard.Wizard) error {
		return w.SelectTimeline(timeline)
	})
}

// Back goes one step back when target is empty, otherwise to the named step.
func (u *WizardUseCase) Back(ctx context.Context, sessionID, target string) (WizardView, error) {
	target = strings.TrimSpace(target)
	return u.apply(ctx, sessionID, "back", func(w *wizard.Wizard) error {
		if target == "" {
			return w.Back()
		}
		step, err := wizard.ParseStep(target)
		if err != nil {
			return err
		}
		return w.BackTo(step)
	})
}

func (u *WizardUseCase) Reset(ctx context.Context, sessionID string) (WizardView, error) {
	return u.apply(ctx, sessionID, "reset", func(w *wizard.Wizard) error {
		return w.Reset()
	})
}

func (u *WizardUseCase) SetCurrency(ctx context.Context, sessionID string, currency entities.Currency) (WizardView, error) {
	return u.apply(ctx, sessionID, "set_currency", func(w *wizard.Wizard) error {
		return w.SetCurrency(currency)
	})
}

func (u *WizardUseCase) apply(ctx context.Context, sessionID, action string, fn func(w *wizard.Wizard) error) (WizardView, error) {
	s, w, err := u.load(ctx, sessionID)
	if err != nil {
		return WizardView{}, err
	}

	if err := fn(w); err != nil {
		metrics.WizardTransitions.WithLabelValues(action, "rejected").Inc()
		u.log.Debug("wizard action rejected", map[string]interface{}{
			"session_id": s.ID, "action": action, "step": s.Step, "error": err.Error(),
		})
		return WizardView{}, err
	}

	view, err := u.store(ctx, s, w, time.Now().UTC())
	metrics.WizardTransitions.WithLabelValues(action, metrics.Outcome(err)).Inc()
	if err != nil {
		return WizardView{}, err
	}
	return view, nil
}

func (u *WizardUseCase) load(ctx context.Context, sessionID string) (entities.WizardSession, *wizard.Wizard, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.WizardSession{}, nil, ErrInvalidSessionID
	}

	s, err := u.repo.Get(ctx, sessionID)
	if err != nil {
		return entities.WizardSession{}, nil, err
	}
	if s.ID == "" {
		return entities.WizardSession{}, nil, ErrSessionNotFound
	}

	step, err := wizard.ParseStep(s.Step)
	if err != nil {
		return entities.WizardSession{}, nil, fmt.Errorf("stored session %s: %w", s.ID, err)
	}
	w, err := wizard.Restore(u.estimator.Catalog(), step, s.Selection)
	if err != nil {
		return entities.WizardSession{}, nil, fmt.Errorf("stored session %s: %w", s.ID, err)
	}
	return s, w, nil
}

func (u *WizardUseCase) store(ctx context.Context, s entities.WizardSession, w *wizard.Wizard, now time.Time) (WizardView, error) {
	s.Step = w.Step().String()
	s.Selection = w.Selection()
	s.UpdatedAt = now
	if err := u.repo.Save(ctx, s, u.ttl); err != nil {
		return WizardView{}, err
	}
	return u.view(s, w, now)
}

func (u *WizardUseCase) view(s entities.WizardSession, w *wizard.Wizard, touched time.Time) (WizardView, error) {
	est, err := evaluate(u.estimator, w.Selection())
	if err != nil {
		return WizardView{}, err
	}
	return WizardView{
		SessionID: s.ID,
		Step:      w.Step(),
		Estimate:  est,
		CreatedAt: s.CreatedAt,
		ExpiresAt: touched.Add(u.ttl),
	}, nil
}
