package service

import (
	"bytes"
	"testing"

	"go-masscan/masscan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInfos() []masscan.Info {
	ports := []masscan.Port{
		{Port: masscan.Uint32(22), Proto: masscan.String("tcp"), Status: masscan.String("open")},
		{
			Port:  masscan.Uint32(80),
			Proto: masscan.String("tcp"),
			Service: &masscan.Service{
				Name:   masscan.String("http"),
				Banner: masscan.String("nginx"),
			},
		},
	}
	return []masscan.Info{
		{IP: masscan.String("10.0.0.1"), Timestamp: masscan.String("1701436172"), Ports: &ports},
		{IP: masscan.String("10.0.0.2")},
	}
}

func TestFlatten(t *testing.T) {
	results := Flatten(sampleInfos())
	require.Len(t, results, 3)

	assert.Equal(t, PortResult{
		Host: "10.0.0.1", Port: 22, Protocol: "tcp", Status: "open", Timestamp: "1701436172",
	}, results[0])
	assert.Equal(t, PortResult{
		Host: "10.0.0.1", Port: 80, Protocol: "tcp", Service: "http", Banner: "nginx", Timestamp: "1701436172",
	}, results[1])
	assert.Equal(t, PortResult{Host: "10.0.0.2"}, results[2])
}

func TestFlatten_Empty(t *testing.T) {
	assert.Empty(t, Flatten(nil))
}

func TestPortResult_PortString(t *testing.T) {
	assert.Equal(t, "", PortResult{}.PortString())
	assert.Equal(t, "8080", PortResult{Port: 8080}.PortString())
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, Flatten(sampleInfos())))

	out := buf.String()
	assert.Contains(t, out, "10.0.0.1")
	assert.Contains(t, out, "10.0.0.2")
	assert.Contains(t, out, "nginx")
	assert.Contains(t, out, "22")
}
