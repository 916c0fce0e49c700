package constant

// AsciiArtLogo is the application's banner printed above the root help.
const AsciiArtLogo = `
        _       _
  ___ _ __ (_) |__  _ __ _____      _____  ___
 / _ \ '_ \| | '_ \| '__/ _ \ \ /\ / / __|/ _ \
|  __/ |_) | | |_) | | | (_) \ V  V /\__ \  __/
 \___| .__/|_|_.__/|_|  \___/ \_/\_/ |___/\___|
     |_|`
