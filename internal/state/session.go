package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/looplab/fsm"

	"github.com/aska-auto/shaken/internal/models"
)

// シミュレーターの状態
const (
	StateStart           = "start"
	StateMakerSelected   = "maker_selected"
	StateVehicleSelected = "vehicle_selected"
	StateQuoted          = "quoted"
)

// イベント
const (
	EventSelectMaker   = "select_maker"
	EventSelectVehicle = "select_vehicle"
	EventQuote         = "quote"
	EventReset         = "reset"
)

// ErrOutOfOrder 現在の状態では受け付けられない操作
var ErrOutOfOrder = errors.New("operation not allowed in current state")

// Snapshot セッションの現在値
type Snapshot struct {
	State            string       `json:"state"`
	Maker            models.Maker `json:"maker,omitempty"`
	VehicleID        string       `json:"vehicle_id,omitempty"`
	RegistrationYear int          `json:"registration_year,omitempty"`
	Since            time.Time    `json:"since"`
}

// Session 車検費用シミュレーターの操作手順（メーカー → 車種 → 見積もり）
type Session struct {
	mu   sync.RWMutex
	fsm  *fsm.FSM
	snap Snapshot
}

// NewSession セッションを作成
func NewSession() *Session {
	s := &Session{
		snap: Snapshot{State: StateStart, Since: time.Now()},
	}

	s.fsm = fsm.NewFSM(
		StateStart,
		fsm.Events{
			// メーカーはいつでも選び直せる
			{Name: EventSelectMaker, Src: []string{StateStart, StateMakerSelected, StateVehicleSelected, StateQuoted}, Dst: StateMakerSelected},

			// 車種はメーカー選択後
			{Name: EventSelectVehicle, Src: []string{StateMakerSelected, StateVehicleSelected, StateQuoted}, Dst: StateVehicleSelected},

			// 見積もりは車種選択後（年式を変えて何度でも）
			{Name: EventQuote, Src: []string{StateVehicleSelected, StateQuoted}, Dst: StateQuoted},

			{Name: EventReset, Src: []string{StateStart, StateMakerSelected, StateVehicleSelected, StateQuoted}, Dst: StateStart},
		},
		fsm.Callbacks{},
	)

	return s
}

// Current 現在の状態
func (s *Session) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fsm.Current()
}

// Snapshot 現在値のコピー
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.snap
	snap.State = s.fsm.Current()
	return snap
}

// Can イベントを受け付けられるか
func (s *Session) Can(event string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fsm.Can(event)
}

// SelectMaker メーカーを選択（車種・年式はクリア）
func (s *Session) SelectMaker(maker models.Maker) error {
	return s.trigger(EventSelectMaker, func(snap *Snapshot) {
		snap.Maker = maker
		snap.VehicleID = ""
		snap.RegistrationYear = 0
	})
}

// SelectVehicle 車種を選択（年式はクリア）
func (s *Session) SelectVehicle(vehicleID string) error {
	return s.trigger(EventSelectVehicle, func(snap *Snapshot) {
		snap.VehicleID = vehicleID
		snap.RegistrationYear = 0
	})
}

// Quote 見積もった年式を記録
func (s *Session) Quote(registrationYear int) error {
	return s.trigger(EventQuote, func(snap *Snapshot) {
		snap.RegistrationYear = registrationYear
	})
}

// Reset 最初からやり直す
func (s *Session) Reset() error {
	return s.trigger(EventReset, func(snap *Snapshot) {
		*snap = Snapshot{}
	})
}

// trigger イベントを発火し、成功したら値を更新
func (s *Session) trigger(event string, apply func(*Snapshot)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fsm.Event(context.Background(), event); err != nil {
		// 同じ状態への遷移は成功扱い
		var noTransition fsm.NoTransitionError
		if !errors.As(err, &noTransition) {
			return fmt.Errorf("%s in state %s: %w", event, s.fsm.Current(), ErrOutOfOrder)
		}
	}

	apply(&s.snap)
	s.snap.State = s.fsm.Current()
	s.snap.Since = time.Now()
	return nil
}
