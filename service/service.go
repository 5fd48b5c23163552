package service

import (
	"go-masscan/logging"
	"go-masscan/masscan"
	"strconv"
)

var logger = logging.GetSugar()

// PortResult 表示一个扫描结果，一个端口一行
type PortResult struct {
	Host      string
	Port      uint
	Protocol  string
	Status    string
	Service   string
	Banner    string
	Timestamp string
}

// Flatten 把 masscan 的主机结果展开成一个端口一行
// 没有端口的主机也保留一行，Port 为 0
func Flatten(infos []masscan.Info) []PortResult {
	results := make([]PortResult, 0, len(infos))
	for _, info := range infos {
		host := masscan.StringValue(info.IP)
		timestamp := masscan.StringValue(info.Timestamp)

		ports := info.PortList()
		if len(ports) == 0 {
			results = append(results, PortResult{Host: host, Timestamp: timestamp})
			continue
		}
		for _, p := range ports {
			r := PortResult{
				Host:      host,
				Port:      uint(masscan.Uint32Value(p.Port)),
				Protocol:  masscan.StringValue(p.Proto),
				Status:    masscan.StringValue(p.Status),
				Timestamp: timestamp,
			}
			if p.Service != nil {
				r.Service = masscan.StringValue(p.Service.Name)
				r.Banner = masscan.StringValue(p.Service.Banner)
			}
			results = append(results, r)
		}
	}
	return results
}

// PortString 没有端口时返回空字符串
func (r PortResult) PortString() string {
	if r.Port == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(r.Port), 10)
}
