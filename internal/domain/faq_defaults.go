package domain

import "github.com/Vovarama1992/planbmusic/internal/models"

var defaultFAQs = []models.FAQ{
	{Category: "발매문의", Order: 1, Question: "앨범 등록 파일 스펙을 알고 싶어요.", Answer: "음원 파일\nWAV 파일 : 44.1kHz / 16bit 이상 등록가능\n\n앨범 커버 파일\n3,000 x 3,000 픽셀, 10MB 이하의 정방형 JPG 이미지 파일\n\n부클릿 파일\n3,000 x 3,000 픽셀, 10MB 이하의 정방형 JPG 이미지 파일\n\n아티스트 이미지\n3,000 x 3,000 픽셀, 10MB 이하의 정방형 JPG 이미지 파일\n\n뮤직비디오 파일\n3GB 이하의 MP4 또는 MOV 영상파일 (심의본 제출 필수, 영상물등급위원회 심의의 경우 심의 증빙서류 제출 필수)\n\n뮤직비디오 썸네일\n1,280 x 720 픽셀, JPG 이미지 파일\n뮤직비디오 내 화면 캡쳐, 텍스트 추가 등 이미지 편집 불가"},
	{Category: "발매문의", Order: 2, Question: "뮤직비디오 심의는 어떻게 받나요?", Answer: "현재 플랜비에서는 뮤직비디오 심의 대행을 진행하고 있지 않습니다. \n영상물등급위원회를 통해 심의를 받으신 후 심의표기가 된 영상과 심의 증빙서류를 함께 준비해주시면 국내외 플랫폼에 발매가 진행됩니다."},
	{Category: "발매문의", Order: 3, Question: "앨범이 어떤 플랫폼에 서비스 되나요?", Answer: "국내, 해외 메이저 플랫폼 및 소셜 플랫폼에 서비스 됩니다."},
	{Category: "발매문의", Order: 4, Question: "과거에 발매한 앨범도 유통이 가능한가요?", Answer: "네, 과거에 발매한 앨범(구보) 도 발매가 가능합니다. \n다만, 타 유통사를 통해 발매한 앨범은 기존 유통사와의 계약이 만료된 이후 유통이 가능합니다."},
	{Category: "발매문의", Order: 5, Question: "유통 승인 반려 처리 및 서비스 제한 기준이 궁금해요.", Answer: "아래의 경우 승인 반려 처리 또는 서비스 제한이 있을 수 있습니다.\n1.음원의 퀄리티가 정식 디지털 음원 발매 기준에 부합하지 않은 경우\n2.소리 및 묵음 등 반복 재생을 통해 시간을 늘린 경우\n3.재생 시간이 현저히 짧은 경우\n4.어뷰징, 음원 사재기 등 악의적인 행위가 의심이 되는 형태의 음원인 경우\n5.음악의 장르 혹은 스타일이 자사에서 발매하고자 하는 음원과 부합하지 않은 경우\n6.기타 음원 플랫폼사의 정책에 따라 발매가 어려울 것으로 결정된 경우\n7.기타 자사가 판단하기에 발매가 어려울 것으로 결정된 경우"},
	{Category: "발매문의", Order: 6, Question: "리마스터링 앨범을 발매 하고 싶어요.", Answer: "리마스터링 앨범의 경우 원 권리사의 승인이 필요합니다. \n원작 앨범이 플랜비을 통해 발매 되었을 경우 아무런 절차 없이 발매가 가능하고, 타 유통사를 통해 발매된 음원의 경우 유통사의 계약관계를 확인하시고 기존 유통사의 사용 및 정산 승인허가(국내, 해외 모든 플랫폼)를 메일 원본 전달 또는 공문 형식으로 받으셔야 합니다."},

	{Category: "정산 문의", Order: 11, Question: "유통 수수료는 어떻게 되나요?", Answer: "유통수수료는 20%로 적용되고, 매월 제공되는 정산 리포트를 통해 수익 현황을 투명하게 확인할 수 있습니다."},
	{Category: "정산 문의", Order: 12, Question: "앨범 발매 후 정산금은 언제 확인할 수 있나요? 입금은 언제 되나요?", Answer: "앨범 발매월(M) 기준으로 2개월 후 말일(M+2)까지 정산 리포트를 제공하고 있고,\n앨범 발매 3개월 후 말일까지(M+3) 정산금이 입금됩니다. \n\n-예시 (아래 기준으로 매달 정산)\n1월 15일 앨범 첫 발매\n3월 30일까지 정산 리포트 제공, 정산금 세부내역 확인 가능 (1/15 ~ 1/31 판매내역)\n4월 30일까지 정산금 입금 (1/15 ~ 1/31 판매내역)"},
	{Category: "정산 문의", Order: 13, Question: "정산 리포트와 정산금은 어디에서 확인할 수 있나요?", Answer: "매월 안내되는 정산사이트 주소에 로그인 후 [정산조회] 에서 세부 정보를 확인할 수 있습니다."},
	{Category: "정산 문의", Order: 14, Question: "정산금의 최소 입금액이 얼마인가요?", Answer: "플랜비는 단돈 1원이 발생되더라도 매월 정산해 드리고 있습니다."},
	{Category: "정산 문의", Order: 15, Question: "입금 계좌 정보를 수정하고 싶어요.", Answer: "계좌번호 변경이 필요한 경우 당사 오피셜 메일주소로 문의해주시기 바랍니다. 계좌 변경 시점에 따라 실제 입금은 1~2개월 늦게 반영될 수 있습니다."},

	{Category: "프로모션 / 기타 문의", Order: 21, Question: "음원 플랫폼 최신 앨범 노출 1면은 가능한가요?", Answer: "최신 앨범 노출은 플랫폼사들의 고유 권한임에 따라 1면 노출 개런티가 불가능합니다. 보통 아티스트의 인지도, 전작 앨범의 흥행성, 아티스트 팔로워 수를 종합적으로 고려하여 큐레이션하고 있습니다."},
	{Category: "프로모션 / 기타 문의", Order: 22, Question: "앨범, 트랙, 아티스트 정보를 수정하고 싶어요.", Answer: "당사 오피셜 메일로 수정 내용(최종자료)을 전달 주시면 수정이 가능합니다.\n단, 플랫폼 정책에 따라 플랫폼에서 제공하는 사이트를 통해 아티스트(기획사)가 직접 수정해야하는 경우도 있습니다. (Ex. Spotify, Apple Music 등)"},
}
