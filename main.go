package main

import (
	"go-masscan/cmd"
	"go-masscan/logging"
	"os"
)

func main() {

	if err := cmd.RunApp(); err != nil {
		logger := logging.GetSugar()
		logger.Errorf("Error when run app. Error: %+v", err)
		_ = logging.Close()
		os.Exit(1)
	}
	_ = logging.Close()

}
