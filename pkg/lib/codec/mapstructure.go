package codec

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// DurationHookFunc decodes durations written either as Go duration
// strings ("300m", "1h30m") or as a number of seconds.
func DurationHookFunc() mapstructure.DecodeHookFunc {
	return durationHookFunc
}

func durationHookFunc(f, t reflect.Type, data interface{}) (interface{}, error) {
	if t != reflect.TypeOf(time.Duration(0)) {
		return data, nil
	}

	switch f.Kind() {
	case reflect.String:
		return time.ParseDuration(data.(string))
	case reflect.Float64:
		return time.Duration(data.(float64) * float64(time.Second)), nil
	case reflect.Int64:
		return time.Duration(data.(int64)) * time.Second, nil
	default:
		return data, nil
	}
}
