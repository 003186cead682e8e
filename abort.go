package contract

// exitAborted is the status a shell reports for a process killed by SIGABRT.
const exitAborted = 128 + 6
