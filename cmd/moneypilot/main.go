package main

import "github.com/cleitonmarx/moneypilot/internal/app"

func main() {
	err := app.NewMoneyPilotApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
