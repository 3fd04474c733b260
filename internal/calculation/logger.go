package calculation

// Logger is the diagnostic sink the finance calculators write to. The tax
// and portfolio paths log at debug level only; nothing in the package
// requires output, so the zero-cost default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything. It is the default for every calculator
// until SetLogger or a constructor says otherwise.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}
