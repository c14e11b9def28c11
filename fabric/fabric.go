package fabric

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/on-the-ground/rllt/erased"
	"github.com/on-the-ground/rllt/internal/logging"
	"go.uber.org/zap"
)

// Config holds the optional collaborators of a Fabric.
type Config struct {
	Logger *zap.Logger // default: no-op
}

func NewConfig(logger *zap.Logger) Config {
	return Config{
		Logger: logging.OrNop(logger),
	}
}

// IMPORTANT:
// A Fabric is intentionally NOT thread-safe.
//
// Registration, removal and invocation touch plain maps with no locking.
// Invocation may run from several goroutines only while no registration or
// removal is in flight. Anything else needs a lock owned by the caller.
type Fabric struct {
	id           string
	void         map[string]Handler
	withArgument map[string]Handler
	logger       *zap.Logger
}

// New creates an empty fabric. At most one Config may be passed.
func New(config ...Config) *Fabric {
	cfg := normalizeConfig(config)
	return &Fabric{
		id:           uuid.New().String(),
		void:         make(map[string]Handler),
		withArgument: make(map[string]Handler),
		logger:       cfg.Logger,
	}
}

func (f *Fabric) ID() string {
	return f.id
}

// RegisterVoid stores fn under name in the void table, replacing any previous entry.
func (f *Fabric) RegisterVoid(name string, fn func()) {
	f.store(f.void, "void", name, voidHandler(fn))
}

// RegisterHandler stores a raw Handler under name in the argument table.
func (f *Fabric) RegisterHandler(name string, h Handler) {
	f.store(f.withArgument, "argument", name, h)
}

// RegisterWithArgument stores fn under name in the argument table.
// The argument type A and result type R are fixed by fn and are not queryable;
// callers of InvokeWithArgument must already know them.
func RegisterWithArgument[A, R any](f *Fabric, name string, fn func(A) R) {
	f.RegisterHandler(name, argumentHandler[A, R](fn))
}

// Remove deletes name from both tables. Removing an absent name is a no-op.
func (f *Fabric) Remove(name string) {
	_, inVoid := f.void[name]
	_, inArgument := f.withArgument[name]
	delete(f.void, name)
	delete(f.withArgument, name)
	if inVoid || inArgument {
		f.logger.Debug("removed handler",
			zap.String("fabricId", f.id),
			zap.String("name", name),
			zap.Bool("void", inVoid),
			zap.Bool("argument", inArgument),
		)
	}
}

// InvokeAllVoid runs every void handler. Order is unspecified.
func (f *Fabric) InvokeAllVoid() {
	for _, h := range f.void {
		h.Invoke(erased.Empty)
	}
}

// InvokeVoid runs the void handler registered under name, if any,
// and reports whether one was found.
func (f *Fabric) InvokeVoid(name string) bool {
	h, ok := f.void[name]
	if !ok {
		return false
	}
	h.Invoke(erased.Empty)
	return true
}

// InvokeWithArgument feeds arg to the argument handler registered under name
// and recovers its result as R.
//
//   - Absent name: returns (zero, false).
//   - Result is not exactly R: returns (zero, false).
//   - arg is not exactly the handler's argument type: panics with an error
//     wrapping erased.ErrTypeMismatch. This is a programmer error and is never
//     recovered.
func InvokeWithArgument[R, A any](f *Fabric, name string, arg A) (R, bool) {
	h, ok := f.withArgument[name]
	if !ok {
		var zero R
		return zero, false
	}
	return erased.Recover[R](h.Invoke(erased.Of(arg)))
}

// Names returns the sorted names of both tables.
func (f *Fabric) Names() (void, withArgument []string) {
	return slices.Sorted(maps.Keys(f.void)), slices.Sorted(maps.Keys(f.withArgument))
}

// Len returns the number of entries across both tables.
func (f *Fabric) Len() int {
	return len(f.void) + len(f.withArgument)
}

func (f *Fabric) String() string {
	void, withArgument := f.Names()
	return fmt.Sprintf("Fabric{id: %s, void: %v, withArgument: %v}", f.id, void, withArgument)
}

func (f *Fabric) store(table map[string]Handler, kind, name string, h Handler) {
	_, replaced := table[name]
	table[name] = h
	f.logger.Debug("registered handler",
		zap.String("fabricId", f.id),
		zap.String("kind", kind),
		zap.String("name", name),
		zap.Bool("replaced", replaced),
	)
}

// normalizeConfig accepts zero or one Config. Panics if more than one is passed.
func normalizeConfig(config []Config) Config {
	switch len(config) {
	case 1:
		return NewConfig(config[0].Logger)
	case 0:
		return NewConfig(nil)
	default:
		panic("fabric: only one or zero configs allowed")
	}
}
