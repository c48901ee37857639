package appointment

import (
	"context"

	"github.com/BruksfildServices01/provider-scheduler/internal/models"
)

// Notifier entrega os efeitos colaterais de uma transição: inbox do
// prestador e e-mail do cliente. Falhas nunca propagam para o use case.
type Notifier interface {
	NotifyProvider(ctx context.Context, providerID uint, message string)
	EmailClient(client *models.Client, subject string, body string)
}
