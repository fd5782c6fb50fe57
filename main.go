package main

import (
	"github.com/dragon-traveler/wiki-backend/cmd/app"
)

// @title          Dragon Traveler Wiki API
// @version        1.0.0
// @description    The Dragon Traveler community wiki API: game datasets, team
// @description    synergy and summon planning calculators, and the content
// @description    suggestion intake pipeline.
// @license.name   MIT License
// @license.url    https://opensource.org/licenses/MIT
// @BasePath       /api
func main() {
	app.Run()
}
