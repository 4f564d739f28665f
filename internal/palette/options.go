package palette

import "reflect"

// OrderFunc repositions a newly created section. It receives the current
// section names with the new section at index and returns the desired order.
type OrderFunc func(sections []string, index int) []string

// Option configures a registration.
type Option func(*options)

type options struct {
	enabled bool
	deps    []any
	hasDeps bool
	order   OrderFunc
	meta    SectionMeta
}

func resolveOptions(opts []Option) options {
	o := options{enabled: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Enabled gates the registration. A disabled registration contributes nothing
// and retracts whatever the same handle registered before.
func Enabled(enabled bool) Option {
	return func(o *options) { o.enabled = enabled }
}

// Deps lists the values whose change triggers re-registration on Update.
// Values are compared with reflect.DeepEqual, so closures never compare equal
// and should not be passed here.
func Deps(values ...any) Option {
	return func(o *options) {
		o.deps = append([]any{}, values...)
		o.hasDeps = true
	}
}

// OrderSection sets the hook applied when the section is first created.
func OrderSection(fn OrderFunc) Option {
	return func(o *options) { o.order = fn }
}

// WithSectionMeta attaches metadata to the section.
func WithSectionMeta(meta SectionMeta) Option {
	return func(o *options) { o.meta = meta }
}

// WithPriority is shorthand for WithSectionMeta with only a priority.
func WithPriority(p int) Option {
	return func(o *options) {
		o.meta.Priority = Priority(p)
	}
}

// OrderFirst moves the new section to the front.
func OrderFirst(sections []string, index int) []string {
	if index <= 0 || index >= len(sections) {
		return sections
	}
	out := make([]string, 0, len(sections))
	out = append(out, sections[index])
	out = append(out, sections[:index]...)
	out = append(out, sections[index+1:]...)
	return out
}

// OrderBefore returns a hook placing the new section right before target.
// The order is unchanged when target is not registered.
func OrderBefore(target string) OrderFunc {
	return func(sections []string, index int) []string {
		if index < 0 || index >= len(sections) {
			return sections
		}
		name := sections[index]
		rest := make([]string, 0, len(sections)-1)
		rest = append(rest, sections[:index]...)
		rest = append(rest, sections[index+1:]...)
		for i, s := range rest {
			if s == target {
				out := make([]string, 0, len(sections))
				out = append(out, rest[:i]...)
				out = append(out, name)
				out = append(out, rest[i:]...)
				return out
			}
		}
		return sections
	}
}

func depsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
