package timex

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// LayoutTime default serialization layout
// LayoutTime 默认序列化格式
const LayoutTime = "2006-01-02 15:04:05"

// Time wraps time.Time for unified database and JSON serialization
// Time 包装 time.Time，统一数据库与 JSON 的序列化格式
type Time time.Time

// Now returns the current time as Time
// Now 返回当前时间
func Now() Time {
	return Time(time.Now())
}

func (t Time) String() string {
	return time.Time(t).Format(LayoutTime)
}

func (t Time) Time() time.Time {
	return time.Time(t)
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}

// MarshalJSON implements json.Marshaler
// MarshalJSON 实现 json.Marshaler 接口
func (t Time) MarshalJSON() ([]byte, error) {
	if time.Time(t).IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

// UnmarshalJSON implements json.Unmarshaler
// UnmarshalJSON 实现 json.Unmarshaler 接口
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == `""` || s == "null" {
		*t = Time(time.Time{})
		return nil
	}
	parsed, err := time.ParseInLocation(`"`+LayoutTime+`"`, s, time.Local)
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}

// Value implements driver.Valuer for database writes
// Value 实现 driver.Valuer，用于数据库写入
func (t Time) Value() (driver.Value, error) {
	if time.Time(t).IsZero() {
		return nil, nil
	}
	return time.Time(t), nil
}

// Scan implements sql.Scanner for database reads
// Scan 实现 sql.Scanner，用于数据库读取
func (t *Time) Scan(v interface{}) error {
	switch value := v.(type) {
	case time.Time:
		*t = Time(value)
		return nil
	case []byte:
		parsed, err := time.ParseInLocation(LayoutTime, string(value), time.Local)
		if err != nil {
			return err
		}
		*t = Time(parsed)
		return nil
	case string:
		parsed, err := time.ParseInLocation(LayoutTime, value, time.Local)
		if err != nil {
			return err
		}
		*t = Time(parsed)
		return nil
	case nil:
		*t = Time(time.Time{})
		return nil
	}
	return fmt.Errorf("timex: cannot scan type %T into timex.Time", v)
}
