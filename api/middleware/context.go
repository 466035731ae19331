package middleware

import "context"

type contextKey string

const (
	ctxCustomerRef contextKey = "customer_ref"
	ctxChannel     contextKey = "channel"
)

func CustomerRefFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxCustomerRef).(string); ok {
		return v
	}
	return ""
}

func ChannelFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxChannel).(string); ok {
		return v
	}
	return ""
}

// WithCustomerRef injects the customer reference into the context.
func WithCustomerRef(ctx context.Context, customerRef string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxCustomerRef, customerRef)
}

// WithChannel records which client surface originated the request.
func WithChannel(ctx context.Context, channel string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxChannel, channel)
}
