package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type renderCase struct {
	name             string
	contents         []string
	envVars          map[string]string
	expectedMerged   string
	expectedRendered string
	expectedError    error
}

func runRenderCases(t *testing.T, cases []renderCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			files := make([]FileData, len(tc.contents))
			for i, c := range tc.contents {
				files[i] = FileData{Name: fmt.Sprintf("file%d", i), Content: c}
			}
			env := tc.envVars
			sut := &Renderer{
				FilesData: files,
				LookupEnvFunc: func(key string) (string, bool) {
					v, ok := env[key]
					return v, ok
				},
				EnvPrefix: "UTCR",
			}

			if tc.expectedMerged != "" {
				merged, err := sut.Merge()
				require.NoError(t, err)
				require.Equal(t, tc.expectedMerged, merged)
			}
			res, err := sut.Render()
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}
			if tc.expectedRendered != "" {
				require.Equal(t, tc.expectedRendered, res)
			}
		})
	}
}

func TestRenderMerge(t *testing.T) {
	runRenderCases(t, []renderCase{
		{
			name:             "later files override",
			contents:         []string{"A=1\n", "A=2\nB=2\n", "A=3\nC=3\n"},
			expectedRendered: "A = 3\nB = 2\nC = 3\n",
		},
		{
			name:             "undefined var",
			contents:         []string{"A=1\n", "A={{VAR}}\nC=3\n"},
			expectedRendered: "A = {{VAR}}\nC = 3\n",
			expectedError:    ErrMissingVars,
		},
	})
}

func TestRenderCycles(t *testing.T) {
	runRenderCases(t, []renderCase{
		{
			name:             "three vars",
			contents:         []string{"A= {{B}}\n", "B= {{C}}\nC={{A}}\n"},
			expectedMerged:   "A = {{B}}\nB = {{C}}\nC = {{A}}\n",
			expectedRendered: "A = {{B}}\nB = {{C}}\nC = {{A}}\n",
			expectedError:    ErrCycleVars,
		},
		{
			name:             "self reference",
			contents:         []string{"A= {{A}}\n", ""},
			expectedRendered: "A = {{A}}\n",
			expectedError:    ErrCycleVars,
		},
		{
			name:             "broken by the environment",
			contents:         []string{"A= {{B}}\n", "B= {{C}}\nC={{A}}\n"},
			envVars:          map[string]string{"UTCR_C": "4"},
			expectedRendered: "A = 4\nB = 4\nC = 4\n",
		},
	})
}

func TestRenderValues(t *testing.T) {
	runRenderCases(t, []renderCase{
		{
			name:             "composed string",
			contents:         []string{"A=\"path\"\n", "B= \"{{A}}/assets.sqlite\"\n"},
			expectedRendered: "A = \"path\"\nB = \"path/assets.sqlite\"\n",
		},
		{
			name:             "environment only var",
			contents:         []string{"A={{C}}\n"},
			envVars:          map[string]string{"UTCR_C": "4"},
			expectedRendered: "A = 4\n",
		},
		{
			name:             "environment wins over the file",
			contents:         []string{"A=\"hello\"\n", "B=\"{{A}}\"\n"},
			envVars:          map[string]string{"UTCR_A": "you"},
			expectedRendered: "A = \"hello\"\nB = \"you\"\n",
		},
	})
}

func TestRenderNestedTables(t *testing.T) {
	defaults := `
	[RPC]
	Host="0.0.0.0"
	Port=5577
	[RPC.Public]
		Host="127.0.0.1"
`
	custom := `
	[RPC.Public]
	Host="{{RPC.Host}}"
`
	runRenderCases(t, []renderCase{
		{
			name:             "dotted var",
			contents:         []string{defaults, custom},
			expectedRendered: "\n[RPC]\n  Host = \"0.0.0.0\"\n  Port = 5577\n\n  [RPC.Public]\n    Host = \"0.0.0.0\"\n",
		},
		{
			name:             "dotted var from the environment",
			contents:         []string{defaults, custom},
			envVars:          map[string]string{"UTCR_RPC_Host": "env"},
			expectedRendered: "\n[RPC]\n  Host = \"0.0.0.0\"\n  Port = 5577\n\n  [RPC.Public]\n    Host = \"env\"\n",
		},
	})
}

func TestConvertFileToToml(t *testing.T) {
	jsonFile := `{
  "Version": 1,
  "Ledger": {
    "StringLimit": 50,
    "DBPath": "/var/lib/assets.sqlite"
  }
}
`
	data, err := convertFileToToml(jsonFile, "json")
	require.NoError(t, err)
	require.Equal(t,
		"Version = 1.0\n\n[Ledger]\n  DBPath = \"/var/lib/assets.sqlite\"\n  StringLimit = 50.0\n", data)

	_, err = convertFileToToml("A: 1", "yaml")
	require.ErrorIs(t, err, ErrUnsupportedConfigFileType)
}
