package logging

// Detail is a logging detail that enrich the logging message with additional contextual detail.
type Detail interface {
	addTo(l *Logger, e entry)
}

// Field creates a single key value pair based logging detail.
// It will enrich the log entry with a value in the key you gave.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(l *Logger, e entry) {
	e[l.getKeyFormatter()(f.Key)] = l.toFieldValue(f.Value)
}

// Fields is a collection of field that you can add to your logging record.
// It will enrich the log entry with a value in the key you gave.
type Fields map[string]any

func (fields Fields) addTo(l *Logger, e entry) {
	for k, v := range fields {
		Field(k, v).addTo(l, e)
	}
}

// ErrField will represent an error value as a logging detail.
func ErrField(err error) Detail {
	if err == nil {
		return nullLoggingDetail{}
	}
	return Field("error", Fields{
		"message": err.Error(),
	})
}

// LazyDetail lets you add logging details that aren’t evaluated until the log is actually created.
// This is useful when you want to add fields to a debug log that take effort to calculate,
// but would be skipped in a production environment because of the logging level.
type LazyDetail func() Detail

func (df LazyDetail) addTo(l *Logger, e entry) {
	if df == nil {
		return
	}
	d := df()
	if d == nil {
		return
	}
	d.addTo(l, e)
}

func (l *Logger) toFieldValue(val any) any {
	switch val := val.(type) {
	case entry:
		vs := map[string]any{}
		for k, v := range val {
			vs[l.getKeyFormatter()(k)] = l.toFieldValue(v)
		}
		return vs

	case field:
		le := entry{}
		val.addTo(l, le)
		return l.toFieldValue(le)

	case Fields:
		le := entry{}
		val.addTo(l, le)
		return l.toFieldValue(le)

	case []Detail:
		le := entry{}
		for _, v := range val {
			v.addTo(l, le)
		}
		return l.toFieldValue(le)

	case map[string]any:
		vs := map[string]any{}
		for k, v := range val {
			vs[l.getKeyFormatter()(k)] = l.toFieldValue(v)
		}
		return vs

	case error:
		return val.Error()

	default:
		return val
	}
}

type entry map[string]any

func (e entry) addTo(l *Logger, target entry) {
	for k, v := range e {
		target[k] = v
	}
}

type nullLoggingDetail struct{}

func (nullLoggingDetail) addTo(*Logger, entry) {}
