package service

import (
	"github.com/olekukonko/tablewriter"
	"io"
)

// PrintTable 在终端上打印扫描结果
func PrintTable(w io.Writer, results []PortResult) error {
	table := tablewriter.NewWriter(w)
	table.Header("Host", "Port", "Proto", "Status", "Service", "Banner")

	for _, r := range results {
		if err := table.Append([]string{
			r.Host,
			r.PortString(),
			r.Protocol,
			r.Status,
			r.Service,
			r.Banner,
		}); err != nil {
			return err
		}
	}

	return table.Render()
}
