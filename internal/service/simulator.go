package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/aska-auto/shaken/internal/catalog"
	"github.com/aska-auto/shaken/internal/models"
	"github.com/aska-auto/shaken/internal/state"
	"github.com/aska-auto/shaken/pkg/ws"
)

// シミュレーターの応答種別
const (
	MsgTypeVehicles  = "vehicles"
	MsgTypeScenarios = "scenarios"
	MsgTypeQuote     = "quote"
	MsgTypeReset     = "reset"
)

// Welcome 接続直後に送る内容
type Welcome struct {
	ReferenceYear int            `json:"reference_year"`
	Makers        []MakerSummary `json:"makers"`
}

// Welcome 接続直後のメッセージ
func (s *InspectionService) Welcome() ws.Message {
	return ws.Message{
		Type: ws.MsgTypeInit,
		Data: Welcome{ReferenceYear: s.ReferenceYear(), Makers: s.Makers()},
	}
}

// SimulatorSession WebSocket 1接続分のシミュレーター（メーカー → 車種 → 年式）
type SimulatorSession struct {
	service *InspectionService
	state   *state.Session
}

// NewSimulatorSession セッションを作成
func (s *InspectionService) NewSimulatorSession() *SimulatorSession {
	return &SimulatorSession{service: s, state: state.NewSession()}
}

// State 現在の状態
func (ss *SimulatorSession) State() state.Snapshot {
	return ss.state.Snapshot()
}

type selectMakerRequest struct {
	Maker models.Maker `json:"maker"`
}

type selectVehicleRequest struct {
	VehicleID string `json:"vehicle_id"`
}

type quoteRequest struct {
	RegistrationYear int   `json:"registration_year"`
	IncludeBaseFee   *bool `json:"include_base_fee"`
}

// Handle 要求を処理して応答を返す
func (ss *SimulatorSession) Handle(req ws.Request) ws.Message {
	switch req.Type {
	case state.EventSelectMaker:
		var body selectMakerRequest
		if err := decode(req.Data, &body); err != nil {
			return errorReply(err)
		}
		mv, err := ss.service.MakerVehicles(body.Maker)
		if err != nil {
			return errorReply(err)
		}
		if err := ss.state.SelectMaker(mv.Maker.ID); err != nil {
			return errorReply(err)
		}
		return ws.Message{Type: MsgTypeVehicles, Data: mv}

	case state.EventSelectVehicle:
		var body selectVehicleRequest
		if err := decode(req.Data, &body); err != nil {
			return errorReply(err)
		}
		if !ss.state.Can(state.EventSelectVehicle) {
			return errorReply(state.ErrOutOfOrder)
		}
		v, err := ss.service.Catalog().VehicleOf(ss.state.Snapshot().Maker, body.VehicleID)
		if err != nil {
			return errorReply(err)
		}
		scenarios, err := ss.service.Scenarios(v.ID)
		if err != nil {
			return errorReply(err)
		}
		if err := ss.state.SelectVehicle(v.ID); err != nil {
			return errorReply(err)
		}
		return ws.Message{Type: MsgTypeScenarios, Data: scenarios}

	case state.EventQuote:
		var body quoteRequest
		if err := decode(req.Data, &body); err != nil {
			return errorReply(err)
		}
		if !ss.state.Can(state.EventQuote) {
			return errorReply(state.ErrOutOfOrder)
		}
		year := body.RegistrationYear
		if year == 0 {
			year = ss.service.DefaultRegistrationYear()
		}
		includeBaseFee := body.IncludeBaseFee == nil || *body.IncludeBaseFee
		quote, err := ss.service.Quote(ss.state.Snapshot().VehicleID, year, includeBaseFee)
		if err != nil {
			return errorReply(err)
		}
		if err := ss.state.Quote(year); err != nil {
			return errorReply(err)
		}
		return ws.Message{Type: MsgTypeQuote, Data: quote}

	case state.EventReset:
		if err := ss.state.Reset(); err != nil {
			return errorReply(err)
		}
		return ws.Message{Type: MsgTypeReset, Data: ss.state.Snapshot()}

	default:
		return ws.ErrorMessage(errUnknownRequest)
	}
}

var errInvalidRequest = errors.New("invalid request body")

const errUnknownRequest = "unknown request type"

// errorReply エラーを固定文言の応答に変換（クライアントの入力値は含めない）
func errorReply(err error) ws.Message {
	switch {
	case errors.Is(err, errInvalidRequest):
		return ws.ErrorMessage(errInvalidRequest.Error())
	case errors.Is(err, state.ErrOutOfOrder):
		return ws.ErrorMessage(state.ErrOutOfOrder.Error())
	case errors.Is(err, catalog.ErrMakerNotFound):
		return ws.ErrorMessage(catalog.ErrMakerNotFound.Error())
	case errors.Is(err, catalog.ErrVehicleNotFound):
		return ws.ErrorMessage(catalog.ErrVehicleNotFound.Error())
	case errors.Is(err, ErrInvalidRegistrationYear):
		return ws.ErrorMessage(ErrInvalidRegistrationYear.Error())
	case errors.Is(err, models.ErrUnknownCategory):
		return ws.ErrorMessage(models.ErrUnknownCategory.Error())
	default:
		return ws.ErrorMessage("internal error")
	}
}

func decode(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errInvalidRequest
	}
	return nil
}

// WatchReferenceYear 基準年が year から変わったら onChange を呼ぶ（ctx が終わるまで）
func (s *InspectionService) WatchReferenceYear(ctx context.Context, interval time.Duration, year int, onChange func(year int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if current := s.ReferenceYear(); current != year {
				s.logger.Info("Reference year changed", zap.Int("from", year), zap.Int("to", current))
				year = current
				onChange(current)
			}
		}
	}
}
