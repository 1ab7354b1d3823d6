package commands

import (
	_ "github.com/DobbiKov/translate-dir-lib/internal/command/help"
	_ "github.com/DobbiKov/translate-dir-lib/internal/command/info"
	_ "github.com/DobbiKov/translate-dir-lib/internal/command/initialize"
	_ "github.com/DobbiKov/translate-dir-lib/internal/command/list"
	_ "github.com/DobbiKov/translate-dir-lib/internal/command/mark"
	_ "github.com/DobbiKov/translate-dir-lib/internal/command/refresh"
	_ "github.com/DobbiKov/translate-dir-lib/internal/command/showtree"
	_ "github.com/DobbiKov/translate-dir-lib/internal/command/source"
	_ "github.com/DobbiKov/translate-dir-lib/internal/command/status"
	_ "github.com/DobbiKov/translate-dir-lib/internal/command/syncdirs"
	_ "github.com/DobbiKov/translate-dir-lib/internal/command/target"
)

// import all commands to trigger init
