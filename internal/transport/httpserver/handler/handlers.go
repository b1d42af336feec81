package handler

import (
	"reflect"
	"strings"

	clientsdomain "studio-backoffice-go/internal/domain/clients"
	dashboarddomain "studio-backoffice-go/internal/domain/dashboard"
	financedomain "studio-backoffice-go/internal/domain/finance"
	samplesdomain "studio-backoffice-go/internal/domain/samples"
	teamdomain "studio-backoffice-go/internal/domain/team"
	trackingdomain "studio-backoffice-go/internal/domain/tracking"
	"studio-backoffice-go/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	Clients   *clientsdomain.Service
	Team      *teamdomain.Service
	Finance   *financedomain.Service
	Samples   *samplesdomain.Service
	Tracking  *trackingdomain.Service
	Dashboard *dashboarddomain.Service

	log      logger.Logger
	validate *validator.Validate
}

func New(
	clients *clientsdomain.Service,
	team *teamdomain.Service,
	finance *financedomain.Service,
	samples *samplesdomain.Service,
	tracking *trackingdomain.Service,
	dashboard *dashboarddomain.Service,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Clients:   clients,
		Team:      team,
		Finance:   finance,
		Samples:   samples,
		Tracking:  tracking,
		Dashboard: dashboard,
		log:       log,
		validate:  newValidator(),
	}
}

// newValidator reports violations under the json field names the client sent,
// not the Go struct field names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
