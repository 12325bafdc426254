package client

import (
	"fmt"
	"time"

	"github.com/gerich15/TemplateHub/internal/client/models"
	pb "github.com/gerich15/TemplateHub/internal/proto"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// asTime maps an unset timestamp to the zero time rather than the epoch.
func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

// parsePrice decodes the decimal string the server sends. An empty price
// reads as zero.
func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("bad price %q from server: %w", s, err)
	}
	return d, nil
}

func toTemplate(t *pb.Template) (models.Template, error) {
	price, err := parsePrice(t.GetPrice())
	if err != nil {
		return models.Template{}, err
	}
	return models.Template{
		ID:          t.GetId(),
		Name:        t.GetName(),
		Description: t.GetDescription(),
		Price:       price,
		Category:    t.GetCategory(),
		ImagePath:   t.GetImagePath(),
	}, nil
}
