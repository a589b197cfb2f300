package i18n

// Messages holds the console texts of the generator. Format verbs are part of
// the contract between languages: every translation uses the same verbs in
// the same order.
type Messages struct {
	AppTitle       string
	KeyType        string
	Platform       string
	Threads        string
	HashingNote    string
	MemoryWarning  string
	PressEnter     string
	EnterMnemonic  string
	Generating     string
	PerThread      string
	Progress       string
	GenerationDone string
	Writing        string
	ReportHeader   string
	ReportCount    string
	ReportDropped  string
	ReportGenTime  string
	ReportWrite    string
	ReportTotal    string
	ReportRate     string
	ReportFileSize string
	ReportOutput   string
	ReportRunDir   string
}

func Get(lang string) Messages {
	switch lang {
	case "ru":
		return Messages{
			AppTitle:       "⚡ Генератор Cosmos кошельков",
			KeyType:        "Тип ключа: %s\n",
			Platform:       "Платформа: %s %s\n",
			Threads:        "Потоков: %d\n",
			HashingNote:    "Примечание: используется %s\n",
			MemoryWarning:  "⚠️  Внимание: оценка потребления памяти ~%d ГБ\n   Убедитесь, что RAM достаточно.\n",
			PressEnter:     "\nНажмите Enter для продолжения или Ctrl+C для отмены...",
			EnterMnemonic:  "Введите мнемоническую фразу:",
			Generating:     "\nГенерация %s кошельков...\n",
			PerThread:      "Генерация в %d потоков (%s кошельков на поток)...\n",
			Progress:       "\r[%s] %d/%d (%.0f%%) | %.0f кошельков/сек | ETA %s   ",
			GenerationDone: "\nГенерация завершена!\n",
			Writing:        "\nЗапись %s кошельков в файл...\n",
			ReportHeader:   "\n✅ Отчёт:\n────────────────────\n",
			ReportCount:    "📊 Сгенерировано кошельков: %s\n",
			ReportDropped:  "⚠️  Пропущено индексов: %d (см. %s)\n",
			ReportGenTime:  "⏱️  Время генерации: %.2fs\n",
			ReportWrite:    "⏱️  Время записи: %.2fs\n",
			ReportTotal:    "⏱️  Общее время: %.2fs\n",
			ReportRate:     "🚀 Скорость: %.0f кошельков/сек\n",
			ReportFileSize: "💾 Размер файла: %.2f MB\n",
			ReportOutput:   "📁 Файл: %s\n",
			ReportRunDir:   "🗂  Логи: %s\n",
		}
	default: // "en"
		return Messages{
			AppTitle:       "⚡ Cosmos Wallet Generator",
			KeyType:        "Key type: %s\n",
			Platform:       "Platform: %s %s\n",
			Threads:        "Threads: %d\n",
			HashingNote:    "Note: Using %s\n",
			MemoryWarning:  "⚠️  Warning: Estimated memory usage: ~%dGB\n   Ensure you have sufficient RAM available.\n",
			PressEnter:     "\nPress Enter to continue or Ctrl+C to abort...",
			EnterMnemonic:  "Enter your mnemonic phrase:",
			Generating:     "\nGenerating %s wallets...\n",
			PerThread:      "Generating wallets using %d threads (%s wallets per thread)...\n",
			Progress:       "\r[%s] %d/%d (%.0f%%) | %.0f wallets/sec | ETA %s   ",
			GenerationDone: "\nGeneration complete!\n",
			Writing:        "\nWriting %s wallets to file...\n",
			ReportHeader:   "\n✅ Performance Report:\n────────────────────\n",
			ReportCount:    "📊 Wallets generated: %s\n",
			ReportDropped:  "⚠️  Dropped indices: %d (see %s)\n",
			ReportGenTime:  "⏱️  Generation time: %.2fs\n",
			ReportWrite:    "⏱️  Write time: %.2fs\n",
			ReportTotal:    "⏱️  Total time: %.2fs\n",
			ReportRate:     "🚀 Generation rate: %.0f wallets/sec\n",
			ReportFileSize: "💾 File size: %.2f MB\n",
			ReportOutput:   "📁 Output: %s\n",
			ReportRunDir:   "🗂  Logs: %s\n",
		}
	}
}
