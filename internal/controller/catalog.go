package controller

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"service-booking-api/internal/model"
	"service-booking-api/internal/notify"
	"service-booking-api/internal/validate"
)

func (c *Controller) Services() []model.Service {
	return c.catalog.List()
}

// ServiceDetails looks a service up by name; unknown names get the default record.
func (c *Controller) ServiceDetails(ctx context.Context, name string) (model.Service, notify.Notice) {
	if !c.catalog.Known(name) {
		c.log.Info("service not in catalog, showing defaults", zap.String("service", name))
	}
	s := c.catalog.Details(name)
	n := c.notes.Toast(Audience(ctx), notify.Info,
		fmt.Sprintf("%s: %s Duration: %s. Includes: %s.", s.Name, s.Description, s.Duration, s.Includes))
	return s, n
}

// Contact returns the dialable digits of a phone number.
func (c *Controller) Contact(ctx context.Context, phone string) (string, notify.Notice, error) {
	digits := validate.Digits(phone)
	if digits == "" {
		return "", notify.Notice{}, c.fail(Audience(ctx), "", &Failure{Code: CodeInvalid, Field: "phone", Message: msgBookingPhone})
	}
	return digits, c.notes.Toast(Audience(ctx), notify.Call, "Call us at: "+phone), nil
}
