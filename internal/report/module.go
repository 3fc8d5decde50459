package report

import "go.uber.org/fx"

// Module exposes the report builder to the fx container.
var Module = fx.Provide(NewBuilder)
