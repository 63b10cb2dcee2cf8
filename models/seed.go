// Package models file: models/seed.go
//
// Seed records loaded into the in-memory containers at startup. Every
// function returns fresh values so each container owns its own copy.
package models

// SeedUsers returns the demo accounts.
func SeedUsers() []User {
	return []User{
		{ID: "u0", Name: "Super Administrator", Username: "superadmin", Password: "123", Role: RoleSuperAdmin,
			AvatarURL: "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?auto=format&fit=crop&q=80&w=100"},
		{ID: "u1", Name: "Admin Staff", Username: "admin", Password: "123", Role: RoleAdmin,
			AvatarURL: "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&q=80&w=100"},
		{ID: "u2", Name: "Dr. Eng. Budi Santoso", Username: "dosen", Password: "123", Role: RoleLecturer,
			AvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&q=80&w=100"},
		{ID: "u3", Name: "Ahmad Fauzi (Mahasiswa)", Username: "mahasiswa", Password: "123", Role: RoleStudent,
			AvatarURL: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?auto=format&fit=crop&q=80&w=100"},
		{ID: "u4", Name: "Sarah Teknisi", Username: "laboran", Password: "123", Role: RoleLaboran,
			AvatarURL: "https://images.unsplash.com/photo-1580489944761-15a19d654956?auto=format&fit=crop&q=80&w=100"},
	}
}

// SeedStatistics returns the initial homepage counters.
func SeedStatistics() Statistics {
	return Statistics{Students: "450+", Courses: "48", Awards: "25+", Employment: "92%"}
}

// SeedNews returns the initial articles, newest first.
func SeedNews() []NewsItem {
	return []NewsItem{
		{
			ID:          "1",
			Title:       "Mahasiswa RPE Menangkan Kompetisi Energi Terbarukan Nasional 2024",
			Summary:     "Tim mahasiswa RPE berhasil meraih juara 1 dalam inovasi turbin angin efisiensi tinggi dengan desain blade aerodinamis terbaru.",
			Content:     "Tim \"RPE WindForce\" yang terdiri dari 5 mahasiswa semester akhir Program Studi Teknologi Rekayasa Pembangkit Energi (RPE) Polibatam berhasil mengharumkan nama kampus di kancah nasional.\n\nInovasi yang diusung adalah \"Smart Vertical Axis Wind Turbine (VAWT) dengan Blade Komposit Serat Alam\".",
			ImageURL:    "https://images.unsplash.com/photo-1532094349884-543bc11b234d?auto=format&fit=crop&q=80&w=800",
			PublishedAt: "2023-10-15",
			AuthorName:  "Humas RPE",
			Category:    CategoryStudent,
			GalleryURLs: []string{
				"https://images.unsplash.com/photo-1497435334941-8c899ee9e8e9?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1581092921461-eab62e97a783?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1503428593586-e225b476b84c?auto=format&fit=crop&q=80&w=800",
			},
			PDFURL:      "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
			PDFName:     "Laporan_Teknis_Turbin_RPE_2024.pdf",
			Attachments: []Attachment{},
			RelatedLinks: []Link{
				{Title: "Website Kompetisi Nasional", URL: "https://example.com/competition"},
				{Title: "Profil Tim RPE WindForce", URL: "/about"},
			},
		},
		{
			ID:          "2",
			Title:       "Kuliah Tamu: Masa Depan Pembangkit Listrik Nuklir",
			Summary:     "Mendatangkan pakar dari BATAN untuk membahas potensi PLTN di Indonesia.",
			Content:     "Program Studi RPE mengadakan kuliah tamu yang menghadirkan Dr. Ir. Santoso dari Badan Tenaga Nuklir Nasional (BATAN).",
			ImageURL:    "https://images.unsplash.com/photo-1569091791842-7cf9646552dd?auto=format&fit=crop&q=80&w=800",
			PublishedAt: "2023-11-01",
			AuthorName:  "Admin",
			Category:    CategoryEvent,
			Attachments: []Attachment{},
		},
		{
			ID:          "3",
			Title:       "Kerjasama Baru dengan PLTU Tanjung Kasam",
			Summary:     "Program magang bersertifikat untuk mahasiswa semester akhir.",
			Content:     "Politeknik Negeri Batam melalui prodi RPE resmi menandatangani MoU dengan PLTU Tanjung Kasam.",
			ImageURL:    "https://images.unsplash.com/photo-1516937941344-00b4e0337589?auto=format&fit=crop&q=80&w=800",
			PublishedAt: "2023-09-20",
			AuthorName:  "KaProdi",
			Category:    CategoryAcademic,
			Attachments: []Attachment{},
		},
	}
}

// SeedCourses returns the initial curriculum.
func SeedCourses() []Course {
	courses := []Course{
		{Code: "RPE101", Name: "Fisika Terapan", NameEN: "Applied Physics", Semester: 1, Type: CourseMandatory,
			CreditsTheory: 2, CreditsPracticum: 1, Description: "Dasar fisika untuk teknik energi.",
			LearningOutcomesGeneral: []string{
				"Memahami hukum dasar fisika mekanika dan termodinamika.",
				"Mampu melakukan pengukuran besaran fisis dengan alat ukur standar.",
			},
			References: []string{`Halliday, Resnick, Walker, "Fundamentals of Physics"`, `Giancoli, "Physics for Scientists and Engineers"`}},
		{Code: "RPE102", Name: "Matematika Teknik I", NameEN: "Engineering Mathematics I", Semester: 1, Type: CourseMandatory,
			CreditsTheory: 3, Description: "Kalkulus dasar dan aljabar.",
			LearningOutcomesGeneral: []string{
				"Mampu menyelesaikan persoalan sistem persamaan linear.",
				"Memahami konsep limit, turunan, dan integral.",
			},
			References: []string{`Erwin Kreyszig, "Advanced Engineering Mathematics"`, `K.A. Stroud, "Engineering Mathematics"`}},
		{Code: "RPE201", Name: "Termodinamika Teknik", NameEN: "Engineering Thermodynamics", Semester: 2, Type: CourseMandatory,
			CreditsTheory: 2, CreditsPracticum: 2, Description: "Hukum termodinamika dan siklus energi.",
			LearningOutcomesGeneral: []string{
				"Mampu menganalisis siklus termodinamika dasar (Otto, Diesel, Rankine).",
				"Memahami properti zat murni dan gas ideal.",
			},
			References: []string{`Cengel & Boles, "Thermodynamics: An Engineering Approach"`}},
		{Code: "IF627", Name: "Proyek Akhir", NameEN: "Final Project", Semester: 6, Type: CourseMandatory,
			CreditsPracticum: 6, Description: "Pengerjaan tugas akhir mahasiswa.",
			References: []string{"Pedoman Penulisan Tugas Akhir Polibatam"}},
		{Code: "MB1IF", Name: "Magang", NameEN: "Internship", Semester: 6, Type: CourseElective,
			CreditsPracticum: 12, Description: "Program magang industri.",
			References: []string{"Buku Panduan Magang Industri"}},
		{Code: "IF526", Name: "Technopreneurship", NameEN: "Technopreneurship", Semester: 6, Type: CourseMandatory,
			CreditsPracticum: 2, Description: "Kewirausahaan berbasis teknologi.",
			References: []string{`Byers, Dorf, Nelson, "Technology Ventures: From Idea to Enterprise"`}},
	}
	for i := range courses {
		courses[i] = courses[i].WithDerivedCredits()
	}
	return courses
}

// SeedFacilities returns the initial facilities.
func SeedFacilities() []Facility {
	return []Facility{
		{ID: "f1", Name: "Laboratorium Konversi Energi",
			Description: "Dilengkapi dengan modul surya, turbin angin skala kecil, dan simulator PLTMH.",
			ImageURL:    "https://images.unsplash.com/photo-1581092160562-40aa08e78837?auto=format&fit=crop&q=80&w=800",
			Capacity:    30,
			GalleryURLs: []string{
				"https://images.unsplash.com/photo-1581092162384-8987c1d64718?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1509391366360-2e959784a276?auto=format&fit=crop&q=80&w=800",
			}},
		{ID: "f2", Name: "Workshop Mekanik",
			Description: "Peralatan lengkap untuk fabrikasi komponen mesin dan maintenance simulator.",
			ImageURL:    "https://images.unsplash.com/photo-1531973576160-7125cd663d86?auto=format&fit=crop&q=80&w=800",
			Capacity:    50},
		{ID: "f3", Name: "Control Room Simulator",
			Description: "Simulator ruang kontrol pembangkit listrik standar industri (DCS/SCADA).",
			ImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&q=80&w=800",
			Capacity:    20},
	}
}

// SeedLecturers returns the initial staff profiles.
func SeedLecturers() []Lecturer {
	return []Lecturer{
		{ID: "l1", Name: "Dr. Eng. Budi Santoso, S.T., M.Sc.", Title: "Ketua Jurusan Teknik Mesin",
			Specialization: "Thermodynamics, Energy Conversion", Email: "budi.santoso@polibatam.ac.id",
			ImageURL:       "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&q=80&w=400",
			NIK:            "198501152010121002", ProgramStudy: "Teknologi Rekayasa Pembangkit Energi",
			LastEducation: "Doktor (S3)",
			EducationHistory: []string{
				"Sarjana Teknik (S1) Teknik Mesin Universitas Indonesia",
				"Master of Science (S2) Energy System, TU Delft",
				"Doctor of Engineering (S3) Thermal Power, Kyushu University",
			},
			SocialLinks: &SocialLinks{LinkedIn: "#", Scopus: "#", Sinta: "#", GoogleScholar: "#"}},
		{ID: "l2", Name: "Siti Aminah, S.T., M.T.", Title: "Sekretaris Jurusan",
			Specialization: "Renewable Energy Systems", Email: "siti.aminah@polibatam.ac.id",
			ImageURL:       "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=400",
			NIK:            "198803202015042001", ProgramStudy: "Teknologi Rekayasa Pembangkit Energi",
			LastEducation: "Magister Teknik (S2)",
			EducationHistory: []string{
				"Sarjana Teknik (S1) Teknik Elektro ITS",
				"Magister Teknik (S2) Energi Terbarukan ITB",
			},
			SocialLinks: &SocialLinks{Instagram: "#", LinkedIn: "#", TikTok: "#"}},
		{ID: "l3", Name: "Ir. Joko Susilo, M.T.", Title: "Kepala Laboratorium Konversi Energi",
			Specialization: "Power Plant Maintenance", Email: "joko.susilo@polibatam.ac.id",
			ImageURL:       "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?auto=format&fit=crop&q=80&w=400",
			NIK:            "197509102005011003", ProgramStudy: "Teknologi Rekayasa Pembangkit Energi",
			LastEducation: "Magister Teknik (S2)",
			SocialLinks: &SocialLinks{Facebook: "#", Others: []LabelLink{{Label: "Blog Pribadi", URL: "https://jokosusilo.blog"}}}},
	}
}
