package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/tsng/internal/models"
)

const demoAppSource = `/// <reference path="../../references.d.ts" />

module demo.app {
    var dependencies = [
        "ngRoute",
        "demo.controllers",
        'demo.services',
    ];

    function configuration ($logProvider: ng.ILogProvider) {
        $logProvider.debugEnabled(true);
    }

    function run ($log: ng.ILogService, greeting: services.IGreetingService) {
        $log.log("App started.");
    }
}`

func TestExtractModuleHeader(t *testing.T) {
	module := ExtractModuleHeader(demoAppSource)

	assert.True(t, module.FileExisted)
	assert.Equal(t, []string{"ngRoute", "demo.controllers", "demo.services"}, module.Dependencies)

	require.NotNil(t, module.Config)
	assert.Equal(t, "configuration", module.Config.Name)
	assert.Equal(t, []models.Dependency{{Name: "$logProvider", Type: "ng.ILogProvider"}}, module.Config.Dependencies)

	require.NotNil(t, module.Run)
	assert.Equal(t, "run", module.Run.Name)
	assert.Equal(t, []models.Dependency{
		{Name: "$log", Type: "ng.ILogService"},
		{Name: "greeting", Type: "services.IGreetingService"},
	}, module.Run.Dependencies)
}

func TestExtractModuleHeaderWithoutScaffolding(t *testing.T) {
	module := ExtractModuleHeader("module demo.services {\n    class GreetingService {\n    }\n}")

	assert.False(t, module.FileExisted)
	assert.Empty(t, module.Dependencies)
	assert.Nil(t, module.Config)
	assert.Nil(t, module.Run)
}

func TestExtractModuleHeaderPartialScaffolding(t *testing.T) {
	module := ExtractModuleHeader("module a {\n    function run() {\n    }\n}")

	assert.True(t, module.FileExisted)
	assert.Nil(t, module.Config)
	require.NotNil(t, module.Run)
	assert.Empty(t, module.Run.Dependencies)
}

// Whole-text matching sees scaffolding inside comments too.
func TestExtractModuleHeaderMatchesCommentedOutFunction(t *testing.T) {
	module := ExtractModuleHeader("module a {\n    // function configuration() {\n    // }\n}")

	assert.True(t, module.FileExisted)
	require.NotNil(t, module.Config)
}

func TestParseDependencyList(t *testing.T) {
	assert.Equal(t, []string{"a", "b.c"}, parseDependencyList(` "a" , 'b.c', `))
	assert.Empty(t, parseDependencyList(""))
}
