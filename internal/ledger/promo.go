package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/logger"
)

// RedeemPromo grants a code's reward once per session. The grant and the
// used-code record are saved together.
func (s *service) RedeemPromo(ctx context.Context, sessionID, code string) (*PromoResult, error) {
	code = catalog.NormalizePromoCode(code)
	if code == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyPromoCode)
	}

	promo, ok := s.catalog.Promo(code)
	if !ok {
		return nil, fmt.Errorf("%w: "+ErrMsgPromoCode, domain.ErrPromoNotFound, code)
	}

	var amount float64
	state, err := s.mutate(ctx, sessionID, func(st *domain.SessionState) error {
		if st.HasRedeemed(code) {
			return fmt.Errorf("%w: "+ErrMsgPromoCode, domain.ErrPromoAlreadyRedeemed, code)
		}
		amount = promo.Amount(st.Balance)
		st.Balance += amount
		st.UsedPromoCodes = append(st.UsedPromoCodes, code)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgPromoRedeemed, "session_id", sessionID, "code", code, "amount", amount)
	s.publish(ctx, event.PromoRedeemed, sessionID, event.PromoRedeemedPayloadV1{
		Code:       code,
		Amount:     amount,
		NewBalance: state.Balance,
	})
	return &PromoResult{Code: code, Amount: amount, Balance: state.Balance}, nil
}
