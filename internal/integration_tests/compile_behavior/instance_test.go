package integration_tests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/jobwirego/internal/descriptor"
	"github.com/vk/jobwirego/internal/testutil"
)

const shardedJob = `
job "sharded" {
  role      = "ops"
  instances = 3

  task "main" {
    process "worker" {
      cmdline = "worker --shard {{mesos.instance}} --port {{thermos.ports[rpc]}}"
    }
    resources {
      cpu  = 1
      ram  = 32 * 1048576
      disk = 32 * 1048576
    }
  }
}
`

func TestTaskInstanceMaterialization(t *testing.T) {
	t.Parallel()

	t.Run("instance index substitutes into the command line", func(t *testing.T) {
		result := testutil.RunCompile(t, map[string]string{"job.hcl": shardedJob}, 1)
		require.NoError(t, result.Err, "logs:\n%s", result.LogOutput)

		var got descriptor.TaskInstance
		require.NoError(t, json.Unmarshal([]byte(result.Stdout), &got))

		assert.Equal(t, 1, got.Instance)
		assert.Equal(t, "main", got.TaskName)
		require.Len(t, got.Processes, 1)
		assert.Equal(t, "worker", got.Processes[0].Name)
		assert.Equal(t, "worker --shard 1 --port %port:rpc%", got.Processes[0].Cmdline)
	})

	t.Run("index beyond the instance count fails", func(t *testing.T) {
		result := testutil.RunCompile(t, map[string]string{"job.hcl": shardedJob}, 3)
		require.Error(t, result.Err)
		assert.Contains(t, result.Err.Error(), "out of range")
	})
}
