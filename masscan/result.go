package masscan

// Info 一个被发现的主机，对应 masscan -oJ 输出数组中的一个元素
// masscan 可能省略任意字段，所以所有字段都是指针，nil 表示字段不存在
type Info struct {
	IP        *string `json:"ip,omitempty"`
	Timestamp *string `json:"timestamp,omitempty"`
	Ports     *[]Port `json:"ports,omitempty"`
}

// Port 主机上的一个端口
type Port struct {
	Port    *uint32  `json:"port,omitempty"`
	Proto   *string  `json:"proto,omitempty"`
	Status  *string  `json:"status,omitempty"`
	Reason  *string  `json:"reason,omitempty"`
	Service *Service `json:"service,omitempty"`
	TTL     *uint32  `json:"ttl,omitempty"`
}

// Service 开启 --banners 之后 masscan 抓到的服务信息
type Service struct {
	Name   *string `json:"name,omitempty"`
	Banner *string `json:"banner,omitempty"`
}

// String 返回 s 的指针，方便构造结果
func String(s string) *string {
	return &s
}

// Uint32 返回 v 的指针
func Uint32(v uint32) *uint32 {
	return &v
}

// StringValue 解引用，nil 返回空字符串
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Uint32Value 解引用，nil 返回 0
func Uint32Value(v *uint32) uint32 {
	if v == nil {
		return 0
	}
	return *v
}

// PortList 返回 Ports 的内容，字段不存在时返回 nil
func (i Info) PortList() []Port {
	if i.Ports == nil {
		return nil
	}
	return *i.Ports
}
