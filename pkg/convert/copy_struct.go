package convert

import (
	"github.com/bytedance/sonic"
	"github.com/jinzhu/copier"
)

// StructAssign copies same-named fields from src into dst
// StructAssign 把 src 与 dst 中同名字段的值复制到 dst
func StructAssign(src any, dst any) any {
	copier.Copy(dst, src)
	return dst
}

// StructToMap converts a struct into a map via JSON round trip
// StructToMap 通过 JSON 往返将结构体转换为 map
func StructToMap(param any, data map[string]interface{}) error {
	str, err := sonic.Marshal(param)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(str, &data)
}
