// Package subscription contém o predicado de expiração de conta.
package subscription

import (
	"time"

	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
)

// IsExpired decide se a conta está expirada em relação a now:
//   - status "expired" expira sempre, independentemente das datas;
//   - status "active" expira quando subscription_ends_at está no passado;
//   - status "trial" (ou legado vazio) expira quando trial_ends_at está no passado.
//
// Datas ausentes (nil) nunca expiram por si só.
func IsExpired(sub entity.Subscription, now time.Time) bool {
	switch sub.Status {
	case entity.SubscriptionExpired:
		return true
	case entity.SubscriptionActive:
		return sub.EndsAt != nil && sub.EndsAt.Before(now)
	default:
		// trial e contas legadas sem status explícito
		return sub.TrialEndsAt != nil && sub.TrialEndsAt.Before(now)
	}
}
