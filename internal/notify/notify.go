package notify

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/provider-scheduler/internal/mailer"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
)

// Service grava notificações no inbox do prestador e dispara e-mails para
// clientes. Tudo best-effort: falha aqui nunca derruba a operação que
// originou o aviso.
type Service struct {
	db     *gorm.DB
	mailer *mailer.Mailer
}

func New(db *gorm.DB, m *mailer.Mailer) *Service {
	return &Service{db: db, mailer: m}
}

func (s *Service) NotifyProvider(ctx context.Context, providerID uint, message string) {
	n := models.Notification{
		ProviderID: providerID,
		Message:    message,
	}

	if err := s.db.WithContext(ctx).Create(&n).Error; err != nil {
		log.Printf("notify: failed to store notification for provider %d: %v", providerID, err)
	}
}

func (s *Service) EmailClient(client *models.Client, subject string, body string) {
	if client == nil || client.Email == "" {
		return
	}

	email := client.Email
	name := client.Name

	// envio assíncrono: a resposta HTTP não espera o SMTP
	go func() {
		html := fmt.Sprintf("<p>Olá %s,</p><p>%s</p>", name, body)
		if err := s.mailer.Send(email, subject, html); err != nil {
			log.Printf("notify: failed to email %s: %v", email, err)
		}
	}()
}
