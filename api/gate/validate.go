package gate

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"bankstream/api/pb"
)

// Validator checks each inbound message against the constraints declared
// in its validate struct tags.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	v.RegisterStructValidation(depositRules, pb.DepositRequest{})
	return &Validator{v: v}
}

func (*Validator) Name() string { return "validation" }

func (*Validator) Admit(ctx context.Context, _ CallInfo) (context.Context, error) {
	return ctx, nil
}

func (g *Validator) Inspect(_ context.Context, _ CallInfo, msg any) error {
	if err := g.Validate(msg); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return nil
}

// Validate returns a "validation failed: field: rule; ..." error when msg
// breaks any of its constraints. Protobuf runtime messages carry none.
func (g *Validator) Validate(msg any) error {
	if _, ok := msg.(proto.Message); ok {
		return nil
	}

	err := g.v.Struct(msg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fe.Field()+": "+rule)
	}
	return errors.New("validation failed: " + strings.Join(parts, "; "))
}

// depositRules covers the request oneof, which tags cannot express.
func depositRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(pb.DepositRequest)

	switch r := req.Request.(type) {
	case *pb.DepositRequest_AccountNumber:
		if r.AccountNumber <= 0 {
			sl.ReportError(r.AccountNumber, "account_number", "AccountNumber", "gt", "0")
		}
	case *pb.DepositRequest_Money:
		if r.Money.GetAmount() <= 0 {
			sl.ReportError(r.Money.GetAmount(), "amount", "Amount", "gt", "0")
		}
	default:
		sl.ReportError(req.Request, "request", "Request", "required", "")
	}
}
