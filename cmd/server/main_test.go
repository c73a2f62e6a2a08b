package main

import (
	"errors"
	"os"
	"testing"
	"time"
)

func TestWaitForShutdown(t *testing.T) {
	t.Run("nhận tín hiệu thì gọi hàm shutdown", func(t *testing.T) {
		quit := make(chan os.Signal, 1)
		quit <- os.Interrupt

		called := false
		done := make(chan struct{})
		go func() {
			waitForShutdown(quit, func() error {
				called = true
				return nil
			})
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("waitForShutdown không trả về sau khi nhận tín hiệu")
		}
		if !called {
			t.Error("hàm shutdown không được gọi")
		}
	})

	t.Run("shutdown lỗi vẫn trả về bình thường", func(t *testing.T) {
		quit := make(chan os.Signal, 1)
		quit <- os.Interrupt
		waitForShutdown(quit, func() error {
			return errors.New("disconnect lỗi")
		})
	})
}
