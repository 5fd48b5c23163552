package masscan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMasscan_Setters(t *testing.T) {
	mas := Masscan{}.
		SetSystemPath("/usr/local/bin/masscan").
		SetPorts("22,8080-8100").
		SetRanges("10.0.0.0/24").
		SetRate("10000").
		SetExclude("10.0.0.1").
		SetOtherArgs([]string{"--banners"}).
		SetSudo()

	assert.Equal(t, "/usr/local/bin/masscan", mas.SystemPath)
	assert.Equal(t, "22,8080-8100", mas.Ports)
	assert.Equal(t, "10.0.0.0/24", mas.Ranges)
	assert.Equal(t, "10000", mas.Rate)
	assert.Equal(t, "10.0.0.1", mas.Exclude)
	assert.Equal(t, []string{"--banners"}, mas.OtherArgs)
	assert.True(t, mas.Sudo)
}

func TestMasscan_SettersReturnCopies(t *testing.T) {
	base := Masscan{}.SetPorts("80")
	changed := base.SetPorts("443").SetSudo()

	assert.Equal(t, "80", base.Ports)
	assert.False(t, base.Sudo)
	assert.Equal(t, "443", changed.Ports)
	assert.True(t, changed.Sudo)

	args := []string{"--banners"}
	withArgs := base.SetOtherArgs(args)
	args[0] = "--ping"
	assert.Equal(t, []string{"--banners"}, withArgs.OtherArgs)
}

func TestMasscan_SetOtherArgsReplaces(t *testing.T) {
	mas := Masscan{}.
		SetOtherArgs([]string{"--banners", "--retries", "2"}).
		SetOtherArgs([]string{"--ping"})

	assert.Equal(t, []string{"--ping"}, mas.OtherArgs)
}

func TestMasscan_Args(t *testing.T) {
	tests := []struct {
		name     string
		mas      Masscan
		expected []string
	}{
		{
			name: "without exclude",
			mas: Masscan{}.
				SetPorts("22,8080-8100").
				SetRanges("10.0.0.0/24").
				SetRate("10000"),
			expected: []string{
				"-p", "22,8080-8100", "--range", "10.0.0.0/24",
				"--rate", "10000", "--wait", "0", "-oJ", "-",
			},
		},
		{
			name: "with exclude",
			mas: Masscan{}.
				SetPorts("80").
				SetRanges("10.0.0.0/8").
				SetRate("100").
				SetExclude("10.1.0.0/16"),
			expected: []string{
				"-p", "80", "--range", "10.0.0.0/8",
				"--rate", "100", "--exclude", "10.1.0.0/16",
				"--wait", "0", "-oJ", "-",
			},
		},
		{
			name: "other args keep order",
			mas: Masscan{}.
				SetPorts("443").
				SetRanges("192.168.1.1-192.168.1.20").
				SetRate("500").
				SetOtherArgs([]string{"--banners", "--retries", "3", "--source-port", "61000"}),
			expected: []string{
				"-p", "443", "--range", "192.168.1.1-192.168.1.20",
				"--banners", "--retries", "3", "--source-port", "61000",
				"--rate", "500", "--wait", "0", "-oJ", "-",
			},
		},
		{
			name: "empty config",
			mas:  Masscan{},
			expected: []string{
				"-p", "", "--range", "", "--rate", "", "--wait", "0", "-oJ", "-",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mas.Args())
		})
	}
}

func TestMasscan_ArgsIsStable(t *testing.T) {
	mas := Masscan{}.
		SetPorts("1-65535").
		SetRanges("0.0.0.0/0").
		SetRate("100000").
		SetExclude("255.255.255.255").
		SetOtherArgs([]string{"--banners"})

	first := mas.Args()
	second := mas.Args()
	assert.Equal(t, first, second)

	// 修改返回值不影响下一次生成
	first[0] = "changed"
	assert.Equal(t, second, mas.Args())
}

func TestMasscan_ExcludeOnlyWhenSet(t *testing.T) {
	mas := Masscan{}.SetPorts("80").SetRanges("10.0.0.1").SetRate("10")
	assert.NotContains(t, mas.Args(), "--exclude")

	args := mas.SetExclude("10.0.0.2").Args()
	for i, arg := range args {
		if arg == "--exclude" {
			assert.Equal(t, "10.0.0.2", args[i+1])
			return
		}
	}
	t.Fatal("--exclude not found")
}

func TestMasscan_String(t *testing.T) {
	mas := Masscan{}.SetSystemPath("masscan").SetPorts("80").SetRanges("10.0.0.1").SetRate("10")
	assert.Equal(t, "masscan -p 80 --range 10.0.0.1 --rate 10 --wait 0 -oJ -", mas.String())

	sudo := mas.SetSudo().String()
	assert.True(t, strings.HasPrefix(sudo, "sudo masscan -p 80"))
}
