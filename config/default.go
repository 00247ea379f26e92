package config

// DefaultVars are the variables the default values refer to
const DefaultVars = `
PathRWData = "/tmp/assetbridge"
`

// DefaultValues is the default configuration
const DefaultValues = `
# This is the default configuration of the assetbridge node

# Log configuration
[Log]
  # Environment is the environment where the node is running
  Environment = "development" # "production" or "development"
  # Level is the log level
  Level = "info"
  # Outputs are the outputs where the logs will be written
  Outputs = ["stderr"]
  # Rotation applies to outputs that are files
  [Log.Rotation]
    MaxSizeMB = 100
    MaxBackups = 5
    MaxAgeDays = 30
    Compress = false

# Reference asset ledger
[Ledger]
  # DBPath is the sqlite database of the ledger
  DBPath = "{{PathRWData}}/assets.sqlite"
  # StringLimit is the maximum length of an asset name or symbol
  StringLimit = 50
  # ModuleIndex is reported in the Module errors of the ledger
  ModuleIndex = 4

[ChainExtension]
  # StrictAllowanceOrigin only lets a contract adjust allowances owned by
  # its caller or by itself
  StrictAllowanceOrigin = true
  # EmitEvents logs and counts every dispatch
  EmitEvents = true

[VM]
  # ImportModule and ImportName locate the extension function imported by contracts
  ImportModule = "seal0"
  ImportName = "call_chain_extension"
  # EntryPoint is the export invoked on a contract
  EntryPoint = "call"
  # MemoryLimitPages caps the memory of a contract, 64KiB per page
  MemoryLimitPages = 16
  # OutputCapacity is the default size of the output buffer
  OutputCapacity = 256
  # CallTimeout bounds the execution of a contract
  CallTimeout = "1s"

[RPC]
  # Host defines the network adapter that will be used to serve the HTTP requests
  Host = "0.0.0.0"
  # Port defines the port to serve the endpoints via HTTP
  Port = 5577
  # EnableExtensionCall exposes assets_extensionCall, which runs contract calls
  # as any caller the client names. Keep it off unless every client is trusted.
  EnableExtensionCall = false
  # ReadTimeout is the HTTP server read timeout
  # check net/http.server.ReadTimeout and net/http.server.ReadHeaderTimeout
  ReadTimeout = "2s"
  # WriteTimeout is the HTTP server write timeout
  # check net/http.server.WriteTimeout
  WriteTimeout = "2s"
  # MaxRequestsPerIPAndSecond defines how much requests a single IP can
  # send within a single second
  MaxRequestsPerIPAndSecond = 10
`
