package logger

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	fileMutex sync.Mutex
	INFO      *log.Logger
	ERROR     *log.Logger
	logFile   *os.File
)

func LogINFO(s string) {
	if INFO == nil {
		return
	}
	INFO.Println(s)
}

func LogERROR(s string) {
	if ERROR == nil {
		return
	}
	ERROR.Println(s)
}

type lockedFile struct {
	file *os.File
}

func (lf *lockedFile) Write(p []byte) (n int, err error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()
	return lf.file.Write(p)
}

// Init открывает файл журнала. Пустой путь или ошибка открытия - вывод в stdout.
func Init(path string) {
	if path == "" {
		setWriter(os.Stdout)
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Printf("Failed to open log file: %v. We will use standard output", err)
		setWriter(os.Stdout)
		return
	}

	logFile = f
	setWriter(&lockedFile{file: f})
}

// InitDiscard отключает вывод (для тестов)
func InitDiscard() {
	setWriter(io.Discard)
}

func setWriter(w io.Writer) {
	INFO = log.New(w, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ERROR = log.New(w, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
