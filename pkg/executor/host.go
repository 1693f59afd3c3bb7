/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package executor

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	log "github.com/appoptics/appoptics-devkit/pkg/logger"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"
)

type HostExecutor struct {
	Config *specs.AopDevkitConfig
	Logger *log.AopDevkitLogger

	Entrypoint []string
	// Working directory of the spawned process. Empty means the
	// current process directory.
	WorkDir string
	Quiet   bool
}

func NewHostExecutor(c *specs.AopDevkitConfig) *HostExecutor {
	return &HostExecutor{
		Config:     c,
		Logger:     log.GetDefaultLogger(),
		Entrypoint: []string{},
		WorkDir:    "",
		Quiet:      false,
	}
}

// RunCommandWithOutput spawns the command and waits for its
// completion. The child exit code is always returned, also on
// failing commands.
func (h *HostExecutor) RunCommandWithOutput(
	command string, envs map[string]string,
	outBuffer, errBuffer io.WriteCloser,
	entryPoint []string) (int, error) {

	entrypoint := []string{"/bin/bash", "-c"}
	if len(h.Entrypoint) > 0 {
		entrypoint = h.Entrypoint
	}
	if len(entryPoint) > 0 {
		entrypoint = entryPoint
	}

	if outBuffer == nil {
		return 1, fmt.Errorf("Invalid outBuffer")
	}
	if errBuffer == nil {
		return 1, fmt.Errorf("Invalid errBuffer")
	}

	cmds := append(entrypoint, command)

	hostCommand := exec.Command(cmds[0], cmds[1:]...)

	if !h.Quiet && h.Logger != nil {
		h.Logger.InfoC(
			h.Logger.Aurora.Bold(
				h.Logger.Aurora.BrightYellow(
					fmt.Sprintf(":locomotive:>>> Executing...\n- entrypoint: %s\n- command: [%s]",
						entrypoint, command))))
	}

	// Convert envs to array list
	elist := os.Environ()
	for k, v := range envs {
		elist = append(elist, k+"="+v)
	}

	hostCommand.Stdout = outBuffer
	hostCommand.Stderr = errBuffer
	hostCommand.Stdin = os.Stdin
	hostCommand.Env = elist
	hostCommand.Dir = h.WorkDir

	err := hostCommand.Start()
	if err != nil {
		if h.Logger != nil {
			h.Logger.Error("Error on start command: " + err.Error())
		}
		return 1, err
	}

	err = hostCommand.Wait()
	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			if h.Logger != nil {
				h.Logger.Error("Error on waiting command: " + err.Error())
			}
			return 1, err
		}
		// else: the command exited non-zero, the code is under
		// ProcessState.
	}

	ans := hostCommand.ProcessState.ExitCode()

	if h.Logger != nil {
		h.Logger.DebugC(h.Logger.Aurora.Bold(
			h.Logger.Aurora.BrightYellow(
				fmt.Sprintf(":station: Exiting [%d]", ans))))
	}

	return ans, nil
}
